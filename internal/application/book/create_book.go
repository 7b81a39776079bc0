package book

import (
	"context"

	"github.com/bookverse/inventory/internal/domain/book"
	"github.com/bookverse/inventory/internal/domain/inventory"
	"github.com/bookverse/inventory/internal/infrastructure/persistence/mysql"
	"github.com/bookverse/inventory/pkg/metrics"
)

// CreateBookUseCase 创建图书用例
// 设计说明:
// 创建图书的同时初始化一条零库存记录,两者在同一个数据库事务中完成:
// 要么图书和库存记录都存在,要么都不存在,不会出现"有书无库存档案"的
// 中间状态。后续即使某些图书漏建了库存记录,调整路径的惰性创建也能兜底。
type CreateBookUseCase struct {
	bookService   book.Service
	inventoryRepo inventory.Repository
	txManager     *mysql.TxManager
	reorderPoint  int64
}

// NewCreateBookUseCase 创建图书用例
func NewCreateBookUseCase(
	bookService book.Service,
	inventoryRepo inventory.Repository,
	txManager *mysql.TxManager,
	reorderPoint int64,
) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService:   bookService,
		inventoryRepo: inventoryRepo,
		txManager:     txManager,
		reorderPoint:  reorderPoint,
	}
}

// CreateBookRequest 创建图书请求
type CreateBookRequest struct {
	Title         string
	Subtitle      string
	Authors       []string
	Genres        []string
	Description   string
	PriceCents    int64
	CoverImageURL string
	Rating        *float64
}

// Execute 执行创建图书用例
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*book.Book, error) {
	b := &book.Book{
		Title:         req.Title,
		Subtitle:      req.Subtitle,
		Authors:       req.Authors,
		Genres:        req.Genres,
		Description:   req.Description,
		PriceCents:    req.PriceCents,
		CoverImageURL: req.CoverImageURL,
		Rating:        req.Rating,
	}

	// 图书+零库存记录在同一事务中创建
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if err := uc.bookService.CreateBook(txCtx, b); err != nil {
			return err
		}

		record := inventory.NewZeroStockRecord(b.ID, uc.reorderPoint)
		return uc.inventoryRepo.Create(txCtx, record)
	})
	if err != nil {
		return nil, err
	}

	metrics.BooksCreatedTotal.Inc()

	return b, nil
}
