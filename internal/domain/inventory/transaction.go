package inventory

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType 库存交易类型
type TransactionType string

const (
	// TransactionStockIn 入库(delta>0)
	TransactionStockIn TransactionType = "stock_in"
	// TransactionStockOut 出库(delta<0)
	TransactionStockOut TransactionType = "stock_out"
	// TransactionAdjustment 零调整(delta==0,如盘点确认)
	TransactionAdjustment TransactionType = "adjustment"
)

// DeriveTransactionType 根据调整量符号推导交易类型
// 类型由系统推导而非调用方指定,保证流水类型与数量变化永远一致
func DeriveTransactionType(delta int64) TransactionType {
	switch {
	case delta > 0:
		return TransactionStockIn
	case delta < 0:
		return TransactionStockOut
	default:
		return TransactionAdjustment
	}
}

// MaxNotesLen 交易备注最大长度
const MaxNotesLen = 500

// StockTransaction 库存交易流水(仅追加,不可修改/删除)
// 设计说明:
// 1. 每次成功的库存调整都生成一条流水,记录调整前后数量
// 2. PreviousQuantity/NewQuantity构成完整审计链:
//    按时间排序后,上一条的NewQuantity等于下一条的PreviousQuantity
// 3. 被拒绝的调整(会导致负库存)不产生流水
type StockTransaction struct {
	ID               string
	BookID           string
	TransactionType  TransactionType
	Quantity         int64 // 本次调整量(带符号)
	PreviousQuantity int64 // 调整前可用数量
	NewQuantity      int64 // 调整后可用数量
	Notes            string
	CreatedAt        time.Time
}

// NewStockTransaction 创建交易流水
func NewStockTransaction(bookID string, delta, previous int64, notes string) *StockTransaction {
	return &StockTransaction{
		ID:               uuid.New().String(),
		BookID:           bookID,
		TransactionType:  DeriveTransactionType(delta),
		Quantity:         delta,
		PreviousQuantity: previous,
		NewQuantity:      previous + delta,
		Notes:            notes,
	}
}
