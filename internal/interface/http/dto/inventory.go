package dto

import (
	"github.com/bookverse/inventory/internal/domain/inventory"
)

// AdjustInventoryRequest HTTP库存调整请求
// quantity_change使用指针:0是合法的调整量(盘点确认),
// 必须区分"未提供"和"显式传0"
type AdjustInventoryRequest struct {
	QuantityChange *int64 `json:"quantity_change" binding:"required" example:"50"`
	Notes          string `json:"notes" binding:"omitempty,max=500" example:"供应商到货"`
}

// ListInventoryRequest HTTP库存列表请求
type ListInventoryRequest struct {
	Page         int  `form:"page" binding:"omitempty,min=1" example:"1"`
	PerPage      int  `form:"per_page" binding:"omitempty,min=1" example:"20"`
	LowStockOnly bool `form:"low_stock" example:"false"`
}

// InventoryResponse HTTP库存详情响应
type InventoryResponse struct {
	ID                string `json:"id" example:"3c1f6f0a-0f5c-4f6e-bb6e-9a1f1c3f77aa"`
	BookID            string `json:"book_id" example:"7f6f8cbd-96f9-4cf4-8cbb-2a6ec3a5d9b1"`
	BookTitle         string `json:"book_title,omitempty" example:"The Go Programming Language"`
	QuantityAvailable int64  `json:"quantity_available" example:"42"`
	QuantityTotal     int64  `json:"quantity_total" example:"100"`
	ReorderPoint      int64  `json:"reorder_point" example:"5"`
	InStock           bool   `json:"in_stock" example:"true"`
	LowStock          bool   `json:"low_stock" example:"false"`
	CreatedAt         string `json:"created_at" example:"2026-01-15 10:30:00"`
	UpdatedAt         string `json:"updated_at" example:"2026-01-15 10:30:00"`
}

// ToInventoryResponse 库存详情 → HTTP响应
func ToInventoryResponse(d *inventory.Detail) *InventoryResponse {
	r := d.Record
	return &InventoryResponse{
		ID:                r.ID,
		BookID:            r.BookID,
		BookTitle:         d.BookTitle,
		QuantityAvailable: r.QuantityAvailable,
		QuantityTotal:     r.QuantityTotal,
		ReorderPoint:      r.ReorderPoint,
		InStock:           r.InStock(),
		LowStock:          r.LowStock(),
		CreatedAt:         r.CreatedAt.Format(timeLayout),
		UpdatedAt:         r.UpdatedAt.Format(timeLayout),
	}
}

// ToInventoryResponses 批量转换库存详情
func ToInventoryResponses(details []*inventory.Detail) []*InventoryResponse {
	list := make([]*InventoryResponse, len(details))
	for i, d := range details {
		list[i] = ToInventoryResponse(d)
	}
	return list
}
