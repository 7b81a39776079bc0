package inventory

import (
	"time"

	"github.com/google/uuid"
)

// Record 库存记录实体(聚合根)
// DDD设计说明:
// 1. 每本图书最多有一条库存记录(book_id唯一约束)
// 2. 库存记录按需"惰性创建":首次调整某本图书的库存时,
//    自动创建一条零库存记录(quantity=0, reorder_point=默认阈值)
// 3. QuantityAvailable是当前可用数量,QuantityTotal与其随每次调整
//    同步变动(没有独立的"预留"维度),两者都受>=0不变式约束
type Record struct {
	ID                string
	BookID            string
	QuantityAvailable int64 // 当前可用数量(>=0不变式)
	QuantityTotal     int64 // 总量(与可用数量同增同减,>=0不变式)
	ReorderPoint      int64 // 补货阈值(available<=该值时标记为低库存)
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DefaultReorderPoint 默认补货阈值
const DefaultReorderPoint = 5

// NewZeroStockRecord 为图书创建零库存记录(惰性初始化)
func NewZeroStockRecord(bookID string, reorderPoint int64) *Record {
	return &Record{
		ID:                uuid.New().String(),
		BookID:            bookID,
		QuantityAvailable: 0,
		QuantityTotal:     0,
		ReorderPoint:      reorderPoint,
	}
}

// CanAdjust 判断调整量是否会导致库存为负
// 可用数量和总量任一变负都拒绝
func (r *Record) CanAdjust(delta int64) bool {
	return r.QuantityAvailable+delta >= 0 && r.QuantityTotal+delta >= 0
}

// Apply 应用库存调整(调用前必须先通过CanAdjust校验)
// 调整量同时作用于可用数量和总量,两者永远同步变动
func (r *Record) Apply(delta int64) {
	r.QuantityAvailable += delta
	r.QuantityTotal += delta
	r.UpdatedAt = time.Now()
}

// InStock 是否有货
func (r *Record) InStock() bool {
	return r.QuantityAvailable > 0
}

// LowStock 是否低库存(边界值包含:available==reorder_point也算低库存)
func (r *Record) LowStock() bool {
	return r.QuantityAvailable <= r.ReorderPoint
}

// Availability 库存可用性摘要(嵌入图书列表等场景的轻量视图)
type Availability struct {
	QuantityAvailable int64 `json:"quantity_available"`
	InStock           bool  `json:"in_stock"`
	LowStock          bool  `json:"low_stock"`
}

// Availability 从库存记录导出可用性摘要
func (r *Record) Availability() Availability {
	return Availability{
		QuantityAvailable: r.QuantityAvailable,
		InStock:           r.InStock(),
		LowStock:          r.LowStock(),
	}
}

// UnavailableAvailability 无库存记录时的默认可用性
// (尚未惰性创建库存记录的图书视为零库存、低库存)
func UnavailableAvailability() Availability {
	return Availability{
		QuantityAvailable: 0,
		InStock:           false,
		LowStock:          true,
	}
}

// Detail 库存详情(库存记录+图书摘要信息的联合视图)
// 用于库存列表和单本库存查询接口
type Detail struct {
	Record    *Record
	BookTitle string
}
