package book

import (
	"context"

	"github.com/bookverse/inventory/internal/domain/book"
)

// UpdateBookUseCase 图书更新用例(部分更新)
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase 创建图书更新用例
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookService: bookService}
}

// Execute 执行图书更新
// fields中为nil的字段保持原值不变;应用后的实体必须仍满足全部业务约束
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id string, fields book.UpdateFields) (*book.Book, error) {
	return uc.bookService.UpdateBook(ctx, id, fields)
}
