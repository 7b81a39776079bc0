package inventory

import (
	"context"
	"unicode/utf8"
)

// Service 库存领域服务接口
type Service interface {
	// ListInventory 分页查询库存详情列表
	ListInventory(ctx context.Context, params ListParams) ([]*Detail, int64, error)

	// GetByBookID 查询单本图书的库存详情
	// 库存记录或图书任一缺失都返回ErrInventoryNotFound
	GetByBookID(ctx context.Context, bookID string) (*Detail, error)

	// Adjust 调整库存
	// 业务规则:
	// - 备注<=500字符
	// - 调整后库存不能为负(违反时拒绝,无任何副作用)
	// - 成功时原子地更新库存记录并追加交易流水
	Adjust(ctx context.Context, bookID string, delta int64, notes string) (*StockTransaction, error)

	// AvailabilityByBookIDs 批量查询可用性摘要
	// 没有库存记录的图书返回零库存摘要{0, false, true}
	AvailabilityByBookIDs(ctx context.Context, bookIDs []string) (map[string]Availability, error)

	// ListTransactions 分页查询交易流水
	ListTransactions(ctx context.Context, params TransactionListParams) ([]*StockTransaction, int64, error)
}

type service struct {
	repo   Repository
	txRepo TransactionRepository
}

// NewService 创建库存领域服务
func NewService(repo Repository, txRepo TransactionRepository) Service {
	return &service{repo: repo, txRepo: txRepo}
}

// ListInventory 分页查询库存详情列表
func (s *service) ListInventory(ctx context.Context, params ListParams) ([]*Detail, int64, error) {
	return s.repo.ListDetails(ctx, params)
}

// GetByBookID 查询单本图书的库存详情
func (s *service) GetByBookID(ctx context.Context, bookID string) (*Detail, error) {
	return s.repo.GetDetailByBookID(ctx, bookID)
}

// Adjust 调整库存
func (s *service) Adjust(ctx context.Context, bookID string, delta int64, notes string) (*StockTransaction, error) {
	if utf8.RuneCountInString(notes) > MaxNotesLen {
		return nil, ErrNotesTooLong
	}

	// 并发安全和非负校验下沉到仓储实现(行锁事务内完成)
	return s.repo.Adjust(ctx, bookID, delta, notes)
}

// AvailabilityByBookIDs 批量查询可用性摘要
func (s *service) AvailabilityByBookIDs(ctx context.Context, bookIDs []string) (map[string]Availability, error) {
	records, err := s.repo.BatchGetByBookIDs(ctx, bookIDs)
	if err != nil {
		return nil, err
	}

	result := make(map[string]Availability, len(bookIDs))
	for _, id := range bookIDs {
		if r, ok := records[id]; ok {
			result[id] = r.Availability()
		} else {
			result[id] = UnavailableAvailability()
		}
	}

	return result, nil
}

// ListTransactions 分页查询交易流水
func (s *service) ListTransactions(ctx context.Context, params TransactionListParams) ([]*StockTransaction, int64, error) {
	return s.txRepo.List(ctx, params)
}
