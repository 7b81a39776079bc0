package inventory

import (
	"context"

	"github.com/bookverse/inventory/internal/domain/inventory"
)

// ListInventoryUseCase 库存列表查询用例
type ListInventoryUseCase struct {
	inventoryService inventory.Service
	defaultPageSize  int
	maxPageSize      int
}

// NewListInventoryUseCase 创建库存列表查询用例
func NewListInventoryUseCase(inventoryService inventory.Service, defaultPageSize, maxPageSize int) *ListInventoryUseCase {
	return &ListInventoryUseCase{
		inventoryService: inventoryService,
		defaultPageSize:  defaultPageSize,
		maxPageSize:      maxPageSize,
	}
}

// ListInventoryRequest 库存列表查询请求
type ListInventoryRequest struct {
	Page         int
	PageSize     int
	LowStockOnly bool // 只看低库存(available<=reorder_point)
}

// ListInventoryResponse 库存列表查询响应
type ListInventoryResponse struct {
	Items    []*inventory.Detail
	Total    int64
	Page     int
	PageSize int
}

// Execute 执行库存列表查询
func (uc *ListInventoryUseCase) Execute(ctx context.Context, req ListInventoryRequest) (*ListInventoryResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = uc.defaultPageSize
	}
	if req.PageSize > uc.maxPageSize {
		req.PageSize = uc.maxPageSize
	}

	details, total, err := uc.inventoryService.ListInventory(ctx, inventory.ListParams{
		Page:         req.Page,
		PageSize:     req.PageSize,
		LowStockOnly: req.LowStockOnly,
	})
	if err != nil {
		return nil, err
	}

	return &ListInventoryResponse{
		Items:    details,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}
