package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/bookverse/inventory/internal/domain/inventory"
	apperrors "github.com/bookverse/inventory/pkg/errors"
)

// transactionRepository 交易流水仓储实现(MySQL)
// 仅追加+查询:流水由Adjust在事务内写入,本仓储只负责分页读取
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository 创建交易流水仓储
func NewTransactionRepository(db *gorm.DB) inventory.TransactionRepository {
	return &transactionRepository{db: db}
}

// List 分页查询交易流水(created_at降序,最新在前)
func (r *transactionRepository) List(ctx context.Context, params inventory.TransactionListParams) ([]*inventory.StockTransaction, int64, error) {
	var models []StockTransactionModel
	var total int64

	query := getDB(ctx, r.db).Model(&StockTransactionModel{})

	// 可选按图书过滤
	if params.BookID != "" {
		query = query.Where("book_id = ?", params.BookID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询流水总数失败")
	}

	err := query.
		Order("created_at DESC").
		Limit(params.PageSize).
		Offset(params.Offset()).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询交易流水失败")
	}

	txs := make([]*inventory.StockTransaction, len(models))
	for i := range models {
		txs[i] = toTransactionEntity(&models[i])
	}

	return txs, total, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toTransactionModel 领域实体 → GORM模型
func toTransactionModel(t *inventory.StockTransaction) *StockTransactionModel {
	return &StockTransactionModel{
		ID:               t.ID,
		BookID:           t.BookID,
		TransactionType:  string(t.TransactionType),
		Quantity:         t.Quantity,
		PreviousQuantity: t.PreviousQuantity,
		NewQuantity:      t.NewQuantity,
		Notes:            t.Notes,
		CreatedAt:        t.CreatedAt,
	}
}

// toTransactionEntity GORM模型 → 领域实体
func toTransactionEntity(model *StockTransactionModel) *inventory.StockTransaction {
	return &inventory.StockTransaction{
		ID:               model.ID,
		BookID:           model.BookID,
		TransactionType:  inventory.TransactionType(model.TransactionType),
		Quantity:         model.Quantity,
		PreviousQuantity: model.PreviousQuantity,
		NewQuantity:      model.NewQuantity,
		Notes:            model.Notes,
		CreatedAt:        model.CreatedAt,
	}
}
