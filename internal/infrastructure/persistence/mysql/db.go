package mysql

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bookverse/inventory/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	// 1. 构建DSN连接字符串
	dsn := cfg.Database.DSN()

	// 2. 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	// 3. 连接数据库
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 6. 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// 注意：AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&BookModel{},
		&InventoryRecordModel{},
		&StockTransactionModel{},
	)
}

// =========================================
// GORM数据模型
// =========================================
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag
// 2. domain层的实体不依赖GORM,Repository负责两者之间的转换
// 3. 主键统一使用char(36)的UUID字符串,便于分布式环境下跨服务引用

// StringList 字符串列表字段(作者、分类)
// 以JSON数组形式存入单列,保持元素顺序
type StringList []string

// Value 实现driver.Valuer,写库时序列化为JSON
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 实现sql.Scanner,读库时反序列化JSON
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("无法扫描%T到StringList", value)
	}

	return json.Unmarshal(data, (*[]string)(l))
}

// BookModel GORM图书模型
// 设计说明:
// 1. 价格使用int64存储"美分"为单位(避免浮点数精度问题)
// 2. IsActive标记软删除:下架图书物理行保留,列表和详情查询默认过滤
// 3. 作者/分类以JSON列存储,保持顺序
type BookModel struct {
	ID            string     `gorm:"primaryKey;size:36"`
	Title         string     `gorm:"index;size:500;not null;comment:书名"`
	Subtitle      string     `gorm:"size:500;comment:副标题"`
	Authors       StringList `gorm:"type:json;comment:作者列表(JSON数组)"`
	Genres        StringList `gorm:"type:json;comment:分类列表(JSON数组)"`
	Description   string     `gorm:"type:text;comment:图书描述"`
	PriceCents    int64      `gorm:"not null;comment:价格(美分)"`
	CoverImageURL string     `gorm:"size:500;comment:封面图片URL"`
	Rating        *float64   `gorm:"comment:评分(0.0-5.0)"`
	IsActive      bool       `gorm:"index;default:true;comment:是否在架(软删除标记)"`
	CreatedAt     time.Time  `gorm:"index;comment:创建时间"`
	UpdatedAt     time.Time  `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// InventoryRecordModel GORM库存记录模型
// 设计说明:
// 1. BookID唯一索引保证每本图书最多一条库存记录
// 2. 不加图书外键约束:库存记录可先于图书校验惰性创建
type InventoryRecordModel struct {
	ID                string    `gorm:"primaryKey;size:36"`
	BookID            string    `gorm:"uniqueIndex;size:36;not null;comment:图书ID"`
	QuantityAvailable int64     `gorm:"index:idx_inv_low_stock;not null;default:0;comment:当前可用数量"`
	QuantityTotal     int64     `gorm:"not null;default:0;comment:总量(与可用数量同步变动)"`
	ReorderPoint      int64     `gorm:"index:idx_inv_low_stock;not null;default:5;comment:补货阈值"`
	CreatedAt         time.Time `gorm:"comment:创建时间"`
	UpdatedAt         time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (InventoryRecordModel) TableName() string {
	return "inventory_records"
}

// StockTransactionModel GORM库存交易流水模型
// 设计说明:
// 1. 仅追加:没有任何UPDATE/DELETE路径
// 2. (book_id, created_at)索引支撑按图书+时间的流水查询
type StockTransactionModel struct {
	ID               string    `gorm:"primaryKey;size:36"`
	BookID           string    `gorm:"index:idx_tx_book_time;size:36;not null;comment:图书ID"`
	TransactionType  string    `gorm:"size:20;not null;comment:交易类型(stock_in/stock_out/adjustment)"`
	Quantity         int64     `gorm:"not null;comment:调整量(带符号)"`
	PreviousQuantity int64     `gorm:"not null;comment:调整前可用数量"`
	NewQuantity      int64     `gorm:"not null;comment:调整后可用数量"`
	Notes            string    `gorm:"size:500;comment:备注"`
	CreatedAt        time.Time `gorm:"index:idx_tx_book_time;index;comment:创建时间"`
}

// TableName 指定表名
func (StockTransactionModel) TableName() string {
	return "stock_transactions"
}
