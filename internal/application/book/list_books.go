package book

import (
	"context"
	"log"

	"github.com/bookverse/inventory/internal/domain/book"
	"github.com/bookverse/inventory/internal/domain/inventory"
	"github.com/bookverse/inventory/internal/infrastructure/persistence/redis"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 分页参数规范化:page默认1,page_size默认/上限来自配置(超限截断而非报错)
// 2. 每个列表项附带可用性摘要,批量获取(MGET+单次IN查询)避免N+1
// 3. 没有库存记录的图书返回零库存摘要{0, false, true}
type ListBooksUseCase struct {
	bookService      book.Service
	inventoryService inventory.Service
	cache            *redis.AvailabilityCache
	defaultPageSize  int
	maxPageSize      int
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(
	bookService book.Service,
	inventoryService inventory.Service,
	cache *redis.AvailabilityCache,
	defaultPageSize, maxPageSize int,
) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService:      bookService,
		inventoryService: inventoryService,
		cache:            cache,
		defaultPageSize:  defaultPageSize,
		maxPageSize:      maxPageSize,
	}
}

// ListBooksRequest 列表查询请求
type ListBooksRequest struct {
	Page     int
	PageSize int
}

// ListBooksResponse 列表查询响应
type ListBooksResponse struct {
	Items    []*BookWithAvailability
	Total    int64
	Page     int
	PageSize int
}

// Execute 执行列表查询
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	// 1. 分页参数规范化
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = uc.defaultPageSize
	}
	if req.PageSize > uc.maxPageSize {
		req.PageSize = uc.maxPageSize
	}

	// 2. 查询图书
	books, total, err := uc.bookService.ListBooks(ctx, book.ListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, err
	}

	// 3. 批量获取可用性摘要
	availabilities := uc.batchLoadAvailability(ctx, books)

	items := make([]*BookWithAvailability, len(books))
	for i, b := range books {
		items[i] = &BookWithAvailability{
			Book:         b,
			Availability: availabilities[b.ID],
		}
	}

	return &ListBooksResponse{
		Items:    items,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

// batchLoadAvailability 批量读取可用性(缓存优先,缺失部分回源并回填)
func (uc *ListBooksUseCase) batchLoadAvailability(ctx context.Context, books []*book.Book) map[string]inventory.Availability {
	result := make(map[string]inventory.Availability, len(books))
	if len(books) == 0 {
		return result
	}

	bookIDs := make([]string, len(books))
	for i, b := range books {
		bookIDs[i] = b.ID
	}

	// 1. 批量查缓存
	if uc.cache != nil {
		cached, err := uc.cache.BatchGet(ctx, bookIDs)
		if err != nil {
			log.Printf("[WARN] 可用性缓存批量读取失败: %v", err)
		} else {
			for id, a := range cached {
				result[id] = a
			}
		}
	}

	// 2. 缓存缺失的部分回源数据库
	var missing []string
	for _, id := range bookIDs {
		if _, ok := result[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return result
	}

	fromDB, err := uc.inventoryService.AvailabilityByBookIDs(ctx, missing)
	if err != nil {
		// 降级:查不到的图书按零库存展示,列表本身不失败
		log.Printf("[WARN] 批量查询可用性失败: %v", err)
		for _, id := range missing {
			result[id] = inventory.UnavailableAvailability()
		}
		return result
	}

	for id, a := range fromDB {
		result[id] = a
	}

	// 3. 回填缓存
	if uc.cache != nil {
		if err := uc.cache.BatchSet(ctx, fromDB); err != nil {
			log.Printf("[WARN] 可用性缓存批量写入失败: %v", err)
		}
	}

	return result
}
