package inventory

import (
	"context"
)

// ListParams 库存列表查询参数
type ListParams struct {
	Page         int
	PageSize     int
	LowStockOnly bool // 只看低库存(available<=reorder_point)
}

// Offset 计算分页偏移量
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// TransactionListParams 交易流水查询参数
type TransactionListParams struct {
	Page     int
	PageSize int
	BookID   string // 可选,按图书过滤;空字符串表示不过滤
}

// Offset 计算分页偏移量
func (p TransactionListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Repository 库存仓储接口(依赖倒置原则)
// 设计说明:
// 1. Adjust是核心操作,实现必须保证并发安全:
//    在同一个数据库事务内用行锁(SELECT ... FOR UPDATE)锁定库存记录,
//    校验非负不变式,更新记录并插入交易流水,最后一起提交。
//    两个并发调整串行执行,绝不会基于过期的快照计算新数量。
// 2. 惰性创建:Adjust遇到不存在的库存记录时在事务内自动创建零库存行
//    (不校验图书是否存在,库存档案可先于目录建立)
type Repository interface {
	// BatchGetByBookIDs 批量获取库存记录(map键为book_id)
	// 只读路径:没有库存记录的图书不会惰性创建,调用方用
	// UnavailableAvailability()兜底
	BatchGetByBookIDs(ctx context.Context, bookIDs []string) (map[string]*Record, error)

	// Create 创建库存记录(图书创建时初始化零库存用)
	Create(ctx context.Context, record *Record) error

	// ListDetails 分页查询库存详情(只包含在架图书,联表带出书名)
	ListDetails(ctx context.Context, params ListParams) ([]*Detail, int64, error)

	// GetDetailByBookID 获取单本图书的库存详情
	// 库存记录或图书任一缺失都返回ErrInventoryNotFound(只读路径不惰性创建)
	GetDetailByBookID(ctx context.Context, bookID string) (*Detail, error)

	// Adjust 原子调整库存
	// 成功时返回生成的交易流水;调整后为负时返回ErrNegativeInventory,
	// 且库存记录和流水表均无任何变化
	Adjust(ctx context.Context, bookID string, delta int64, notes string) (*StockTransaction, error)
}

// TransactionRepository 交易流水仓储接口(仅追加+查询,无更新/删除)
type TransactionRepository interface {
	// List 分页查询交易流水(created_at降序,最新在前)
	List(ctx context.Context, params TransactionListParams) ([]*StockTransaction, int64, error)
}
