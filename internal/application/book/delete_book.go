package book

import (
	"context"
	"log"

	"github.com/bookverse/inventory/internal/domain/book"
	"github.com/bookverse/inventory/internal/infrastructure/persistence/redis"
)

// DeleteBookUseCase 图书软删除用例
// 设计说明:
// 只翻转is_active标记,物理行、库存记录和交易流水全部保留。
// 已删除图书的可用性缓存一并失效(避免下架后列表短暂展示旧摘要)。
type DeleteBookUseCase struct {
	bookService book.Service
	cache       *redis.AvailabilityCache
}

// NewDeleteBookUseCase 创建图书软删除用例
func NewDeleteBookUseCase(bookService book.Service, cache *redis.AvailabilityCache) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookService: bookService, cache: cache}
}

// Execute 执行软删除
// 图书不存在或已删除时返回ErrBookNotFound
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id string) error {
	if err := uc.bookService.DeleteBook(ctx, id); err != nil {
		return err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, id)
	}

	log.Printf("图书已下架: %s", id)
	return nil
}
