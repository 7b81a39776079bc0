package dto

import (
	"github.com/bookverse/inventory/internal/domain/inventory"
)

// ListTransactionsRequest HTTP交易流水查询请求
type ListTransactionsRequest struct {
	Page    int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PerPage int    `form:"per_page" binding:"omitempty,min=1" example:"20"`
	BookID  string `form:"book_id" binding:"omitempty,max=36" example:""`
}

// TransactionResponse HTTP交易流水响应
type TransactionResponse struct {
	ID               string `json:"id" example:"b63f0f9c-2a44-4ee0-96ff-1f1dfc08f0a2"`
	BookID           string `json:"book_id" example:"7f6f8cbd-96f9-4cf4-8cbb-2a6ec3a5d9b1"`
	TransactionType  string `json:"transaction_type" example:"stock_in"` // stock_in | stock_out | adjustment
	Quantity         int64  `json:"quantity" example:"50"`
	PreviousQuantity int64  `json:"previous_quantity" example:"0"`
	NewQuantity      int64  `json:"new_quantity" example:"50"`
	Notes            string `json:"notes,omitempty" example:"供应商到货"`
	CreatedAt        string `json:"created_at" example:"2026-01-15 10:30:00"`
}

// ToTransactionResponse 交易流水 → HTTP响应
func ToTransactionResponse(t *inventory.StockTransaction) *TransactionResponse {
	return &TransactionResponse{
		ID:               t.ID,
		BookID:           t.BookID,
		TransactionType:  string(t.TransactionType),
		Quantity:         t.Quantity,
		PreviousQuantity: t.PreviousQuantity,
		NewQuantity:      t.NewQuantity,
		Notes:            t.Notes,
		CreatedAt:        t.CreatedAt.Format(timeLayout),
	}
}

// ToTransactionResponses 批量转换交易流水
func ToTransactionResponses(txs []*inventory.StockTransaction) []*TransactionResponse {
	list := make([]*TransactionResponse, len(txs))
	for i, t := range txs {
		list[i] = ToTransactionResponse(t)
	}
	return list
}
