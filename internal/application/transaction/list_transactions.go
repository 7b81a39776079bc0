package transaction

import (
	"context"

	"github.com/bookverse/inventory/internal/domain/inventory"
)

// ListTransactionsUseCase 交易流水查询用例
// 流水仅追加:本用例只读,没有任何修改路径
type ListTransactionsUseCase struct {
	inventoryService inventory.Service
	defaultPageSize  int
	maxPageSize      int
}

// NewListTransactionsUseCase 创建交易流水查询用例
func NewListTransactionsUseCase(inventoryService inventory.Service, defaultPageSize, maxPageSize int) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		inventoryService: inventoryService,
		defaultPageSize:  defaultPageSize,
		maxPageSize:      maxPageSize,
	}
}

// ListTransactionsRequest 流水查询请求
type ListTransactionsRequest struct {
	Page     int
	PageSize int
	BookID   string // 可选,按图书过滤
}

// ListTransactionsResponse 流水查询响应
type ListTransactionsResponse struct {
	Items    []*inventory.StockTransaction
	Total    int64
	Page     int
	PageSize int
}

// Execute 执行流水查询(created_at降序,最新在前)
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, req ListTransactionsRequest) (*ListTransactionsResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = uc.defaultPageSize
	}
	if req.PageSize > uc.maxPageSize {
		req.PageSize = uc.maxPageSize
	}

	txs, total, err := uc.inventoryService.ListTransactions(ctx, inventory.TransactionListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
		BookID:   req.BookID,
	})
	if err != nil {
		return nil, err
	}

	return &ListTransactionsResponse{
		Items:    txs,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}
