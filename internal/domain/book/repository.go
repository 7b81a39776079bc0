package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
// 3. 仓储实现会从context中提取事务句柄(配合TxManager),
//    使"创建图书+初始化库存记录"能在同一个数据库事务中完成
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书(只返回在架图书,is_active=true)
	FindByID(ctx context.Context, id string) (*Book, error)

	// Update 更新图书信息(全量保存实体)
	Update(ctx context.Context, book *Book) error

	// List 分页查询图书列表
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Page            int  // 页码(从1开始)
	PageSize        int  // 每页数量
	IncludeInactive bool // 是否包含已下架图书
}

// Offset 计算分页偏移量
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}
