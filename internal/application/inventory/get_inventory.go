package inventory

import (
	"context"

	"github.com/bookverse/inventory/internal/domain/inventory"
)

// GetInventoryUseCase 单本库存查询用例
// 只读路径:库存记录或图书不存在时返回不存在,不会惰性建档
type GetInventoryUseCase struct {
	inventoryService inventory.Service
}

// NewGetInventoryUseCase 创建单本库存查询用例
func NewGetInventoryUseCase(inventoryService inventory.Service) *GetInventoryUseCase {
	return &GetInventoryUseCase{inventoryService: inventoryService}
}

// Execute 执行单本库存查询
func (uc *GetInventoryUseCase) Execute(ctx context.Context, bookID string) (*inventory.Detail, error) {
	return uc.inventoryService.GetByBookID(ctx, bookID)
}
