package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bookverse/inventory/internal/domain/inventory"
	apperrors "github.com/bookverse/inventory/pkg/errors"
)

// inventoryRepository 库存仓储实现(MySQL)
// 设计说明:
// 1. reorderPoint是惰性创建零库存记录时的默认补货阈值(来自配置)
// 2. Adjust在单个数据库事务内完成"锁行→校验→更新→写流水",
//    保证并发调整串行化且流水与记录严格一致
type inventoryRepository struct {
	db           *gorm.DB
	reorderPoint int64
}

// NewInventoryRepository 创建库存仓储
func NewInventoryRepository(db *gorm.DB, reorderPoint int64) inventory.Repository {
	return &inventoryRepository{db: db, reorderPoint: reorderPoint}
}

// BatchGetByBookIDs 批量获取库存记录(只读,不惰性创建)
func (r *inventoryRepository) BatchGetByBookIDs(ctx context.Context, bookIDs []string) (map[string]*inventory.Record, error) {
	if len(bookIDs) == 0 {
		return map[string]*inventory.Record{}, nil
	}

	var models []InventoryRecordModel
	err := getDB(ctx, r.db).Where("book_id IN ?", bookIDs).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "批量查询库存记录失败")
	}

	result := make(map[string]*inventory.Record, len(models))
	for i := range models {
		result[models[i].BookID] = toRecordEntity(&models[i])
	}

	return result, nil
}

// Create 创建库存记录(图书创建时初始化零库存用,需在TxManager事务中调用)
func (r *inventoryRepository) Create(ctx context.Context, record *inventory.Record) error {
	model := toRecordModel(record)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建库存记录失败")
	}

	record.CreatedAt = model.CreatedAt
	record.UpdatedAt = model.UpdatedAt
	return nil
}

// inventoryDetailRow 联表查询结果行
type inventoryDetailRow struct {
	InventoryRecordModel
	BookTitle string
}

// ListDetails 分页查询库存详情(联表books,只包含在架图书)
func (r *inventoryRepository) ListDetails(ctx context.Context, params inventory.ListParams) ([]*inventory.Detail, int64, error) {
	var rows []inventoryDetailRow
	var total int64

	query := getDB(ctx, r.db).
		Model(&InventoryRecordModel{}).
		Select("inventory_records.*, books.title AS book_title").
		Joins("JOIN books ON books.id = inventory_records.book_id").
		Where("books.is_active = ?", true)

	// 低库存过滤:available<=reorder_point(边界值包含)
	if params.LowStockOnly {
		query = query.Where("inventory_records.quantity_available <= inventory_records.reorder_point")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询库存总数失败")
	}

	err := query.
		Order("inventory_records.updated_at DESC").
		Limit(params.PageSize).
		Offset(params.Offset()).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询库存列表失败")
	}

	details := make([]*inventory.Detail, len(rows))
	for i := range rows {
		details[i] = &inventory.Detail{
			Record:    toRecordEntity(&rows[i].InventoryRecordModel),
			BookTitle: rows[i].BookTitle,
		}
	}

	return details, total, nil
}

// GetDetailByBookID 获取单本图书的库存详情
// 只读路径不惰性创建:库存记录或图书任一缺失都视为不存在
func (r *inventoryRepository) GetDetailByBookID(ctx context.Context, bookID string) (*inventory.Detail, error) {
	var model InventoryRecordModel
	err := getDB(ctx, r.db).Where("book_id = ?", bookID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inventory.ErrInventoryNotFound
		}
		return nil, apperrors.Wrap(err, "查询库存记录失败")
	}

	var book BookModel
	err = getDB(ctx, r.db).Select("title").Where("id = ?", bookID).First(&book).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inventory.ErrInventoryNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return &inventory.Detail{Record: toRecordEntity(&model), BookTitle: book.Title}, nil
}

// Adjust 原子调整库存
// 并发安全设计(核心路径):
// 1. 在单个数据库事务内,先用SELECT ... FOR UPDATE锁定库存记录行,
//    并发的调整请求在此排队,读到的一定是最新已提交数量
// 2. 持锁校验非负不变式:违反时返回ErrNegativeInventory,事务回滚,
//    库存记录和流水表均无任何变化
// 3. 校验通过则更新记录并插入流水,一起提交(两者要么都生效要么都不生效)
// 4. 库存记录不存在时在事务内惰性创建;输掉插入竞争时回读赢家的行并锁定
func (r *inventoryRepository) Adjust(ctx context.Context, bookID string, delta int64, notes string) (*inventory.StockTransaction, error) {
	var tx *inventory.StockTransaction

	err := getDB(ctx, r.db).Transaction(func(dbTx *gorm.DB) error {
		record, err := r.lockOrCreate(dbTx, bookID)
		if err != nil {
			return err
		}

		// 持锁校验非负不变式
		if !record.CanAdjust(delta) {
			return inventory.ErrNegativeInventory
		}

		stockTx := inventory.NewStockTransaction(bookID, delta, record.QuantityAvailable, notes)
		record.Apply(delta)

		if err := dbTx.Save(toRecordModel(record)).Error; err != nil {
			return apperrors.Wrap(err, "更新库存记录失败")
		}

		txModel := toTransactionModel(stockTx)
		if err := dbTx.Create(txModel).Error; err != nil {
			return apperrors.Wrap(err, "写入交易流水失败")
		}
		// GORM在Create时填充的时间戳只写在模型上,回填到返回的流水实体
		stockTx.CreatedAt = txModel.CreatedAt

		tx = stockTx
		return nil
	})

	if err != nil {
		return nil, err
	}

	return tx, nil
}

// lockOrCreate 在事务内锁定库存记录行,不存在时惰性创建
func (r *inventoryRepository) lockOrCreate(dbTx *gorm.DB, bookID string) (*inventory.Record, error) {
	lock := func(q *gorm.DB) *gorm.DB {
		if supportsRowLock(dbTx) {
			return q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		return q
	}

	var model InventoryRecordModel
	err := lock(dbTx).Where("book_id = ?", bookID).First(&model).Error
	if err == nil {
		return toRecordEntity(&model), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(err, "锁定库存记录失败")
	}

	// 惰性创建:输掉唯一索引竞争时改为锁定赢家的行
	record := inventory.NewZeroStockRecord(bookID, r.reorderPoint)
	newModel := toRecordModel(record)
	if err := dbTx.Create(newModel).Error; err != nil {
		if isDuplicateError(err) {
			var existing InventoryRecordModel
			if err := lock(dbTx).Where("book_id = ?", bookID).First(&existing).Error; err != nil {
				return nil, apperrors.Wrap(err, "锁定库存记录失败")
			}
			return toRecordEntity(&existing), nil
		}
		return nil, apperrors.Wrap(err, "创建库存记录失败")
	}

	record.CreatedAt = newModel.CreatedAt
	record.UpdatedAt = newModel.UpdatedAt
	return record, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toRecordModel 领域实体 → GORM模型
func toRecordModel(r *inventory.Record) *InventoryRecordModel {
	return &InventoryRecordModel{
		ID:                r.ID,
		BookID:            r.BookID,
		QuantityAvailable: r.QuantityAvailable,
		QuantityTotal:     r.QuantityTotal,
		ReorderPoint:      r.ReorderPoint,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// toRecordEntity GORM模型 → 领域实体
func toRecordEntity(model *InventoryRecordModel) *inventory.Record {
	return &inventory.Record{
		ID:                model.ID,
		BookID:            model.BookID,
		QuantityAvailable: model.QuantityAvailable,
		QuantityTotal:     model.QuantityTotal,
		ReorderPoint:      model.ReorderPoint,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}
}
