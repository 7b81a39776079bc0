package book

import (
	"context"
	"log"

	"github.com/bookverse/inventory/internal/domain/book"
	"github.com/bookverse/inventory/internal/domain/inventory"
	"github.com/bookverse/inventory/internal/infrastructure/persistence/redis"
)

// BookWithAvailability 图书+可用性摘要
// 图书详情和列表都附带库存可用性,前端无需再发一次库存查询
type BookWithAvailability struct {
	Book         *book.Book
	Availability inventory.Availability
}

// GetBookUseCase 图书详情查询用例
// 设计说明:
// 可用性摘要走Cache-Aside:先查Redis,未命中回源数据库并填充缓存。
// Redis故障时记录日志并直接回源,查询不因缓存层故障而失败。
type GetBookUseCase struct {
	bookService      book.Service
	inventoryService inventory.Service
	cache            *redis.AvailabilityCache
}

// NewGetBookUseCase 创建图书详情查询用例
func NewGetBookUseCase(
	bookService book.Service,
	inventoryService inventory.Service,
	cache *redis.AvailabilityCache,
) *GetBookUseCase {
	return &GetBookUseCase{
		bookService:      bookService,
		inventoryService: inventoryService,
		cache:            cache,
	}
}

// Execute 执行图书详情查询
func (uc *GetBookUseCase) Execute(ctx context.Context, id string) (*BookWithAvailability, error) {
	b, err := uc.bookService.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}

	availability := uc.loadAvailability(ctx, id)

	return &BookWithAvailability{Book: b, Availability: availability}, nil
}

// loadAvailability 读取可用性摘要(缓存优先,降级回源)
func (uc *GetBookUseCase) loadAvailability(ctx context.Context, bookID string) inventory.Availability {
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, bookID)
		if err != nil {
			log.Printf("[WARN] 可用性缓存读取失败 book_id=%s: %v", bookID, err)
		} else if cached != nil {
			return *cached
		}
	}

	availabilities, err := uc.inventoryService.AvailabilityByBookIDs(ctx, []string{bookID})
	if err != nil {
		log.Printf("[WARN] 查询可用性失败 book_id=%s: %v", bookID, err)
		return inventory.UnavailableAvailability()
	}

	a := availabilities[bookID]

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, bookID, a); err != nil {
			log.Printf("[WARN] 可用性缓存写入失败 book_id=%s: %v", bookID, err)
		}
	}

	return a
}
