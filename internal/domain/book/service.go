package book

import (
	"context"

	"github.com/google/uuid"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装图书聚合的业务规则校验
// 2. 不依赖具体的Repository实现(依赖倒置)
// 3. "创建图书+初始化库存记录"的原子性由应用层用例配合TxManager保证,
//    领域服务只负责单聚合内的规则
type Service interface {
	// CreateBook 创建图书
	// 业务规则:
	// - 书名1-500字符,副标题<=500字符
	// - 作者/分类列表非空
	// - 价格必须>0,评分(如提供)在0.0-5.0之间
	// 注意:不校验书名/作者唯一性,重复书目允许存在(不同版次共用书名)
	CreateBook(ctx context.Context, b *Book) error

	// GetBookByID 根据ID获取图书详情(只返回在架图书)
	GetBookByID(ctx context.Context, id string) (*Book, error)

	// UpdateBook 部分更新图书
	// 只应用fields中提供的字段,未提供的字段保持原值;updated_at自动刷新
	UpdateBook(ctx context.Context, id string, fields UpdateFields) (*Book, error)

	// DeleteBook 软删除图书(is_active=false)
	// 物理行、库存记录和交易流水全部保留
	// 图书不存在或已下架时返回ErrBookNotFound(幂等的not-found语义)
	DeleteBook(ctx context.Context, id string) error

	// ListBooks 分页查询图书列表
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, b *Book) error {
	// 1. 分配UUID标识
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	b.IsActive = true

	// 2. 业务规则校验
	if err := b.Validate(); err != nil {
		return err
	}

	// 3. 持久化
	return s.repo.Create(ctx, b)
}

// GetBookByID 根据ID获取图书详情
func (s *service) GetBookByID(ctx context.Context, id string) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateBook 部分更新图书
func (s *service) UpdateBook(ctx context.Context, id string, fields UpdateFields) (*Book, error) {
	// 1. 查找图书(不存在或已下架返回ErrBookNotFound)
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 应用部分更新并重新校验
	if err := b.Apply(fields); err != nil {
		return nil, err
	}

	// 3. 持久化
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// DeleteBook 软删除图书
func (s *service) DeleteBook(ctx context.Context, id string) error {
	// FindByID只返回在架图书,已删除的图书再次删除同样得到ErrBookNotFound
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	b.Deactivate()

	return s.repo.Update(ctx, b)
}

// ListBooks 分页查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params)
}
