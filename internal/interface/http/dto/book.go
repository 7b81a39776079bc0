package dto

import (
	"math"

	"github.com/bookverse/inventory/internal/domain/book"
	"github.com/bookverse/inventory/internal/domain/inventory"
)

// timeLayout HTTP响应中的时间格式
const timeLayout = "2006-01-02 15:04:05"

// CreateBookRequest HTTP创建图书请求
// validator tag说明:
// - required: 必填字段
// - min/max: 长度或数值范围校验
// - gt: 数值必须大于指定值
type CreateBookRequest struct {
	Title         string   `json:"title" binding:"required,max=500" example:"The Go Programming Language"`
	Subtitle      string   `json:"subtitle" binding:"omitempty,max=500" example:""`
	Authors       []string `json:"authors" binding:"required,min=1" example:"Alan A. A. Donovan"`
	Genres        []string `json:"genres" binding:"required,min=1" example:"Programming"`
	Description   string   `json:"description" binding:"required" example:"The authoritative resource for Go."`
	Price         float64  `json:"price" binding:"required,gt=0" example:"39.99"` // 价格(美元,两位小数)
	CoverImageURL string   `json:"cover_image_url" binding:"required,url,max=500" example:"https://example.com/cover.jpg"`
	Rating        *float64 `json:"rating" binding:"omitempty,min=0,max=5" example:"4.6"`
}

// UpdateBookRequest HTTP更新图书请求(部分更新)
// 所有字段可选:未出现在请求体中的字段保持原值不变
type UpdateBookRequest struct {
	Title         *string  `json:"title" binding:"omitempty,max=500"`
	Subtitle      *string  `json:"subtitle" binding:"omitempty,max=500"`
	Authors       []string `json:"authors" binding:"omitempty,min=1"`
	Genres        []string `json:"genres" binding:"omitempty,min=1"`
	Description   *string  `json:"description" binding:"omitempty"`
	Price         *float64 `json:"price" binding:"omitempty,gt=0"`
	CoverImageURL *string  `json:"cover_image_url" binding:"omitempty,url,max=500"`
	Rating        *float64 `json:"rating" binding:"omitempty,min=0,max=5"`
}

// ToUpdateFields HTTP请求 → 领域部分更新字段集(美元→美分)
func (r *UpdateBookRequest) ToUpdateFields() book.UpdateFields {
	fields := book.UpdateFields{
		Title:         r.Title,
		Subtitle:      r.Subtitle,
		Authors:       r.Authors,
		Genres:        r.Genres,
		Description:   r.Description,
		CoverImageURL: r.CoverImageURL,
		Rating:        r.Rating,
	}
	if r.Price != nil {
		cents := DollarsToCents(*r.Price)
		fields.PriceCents = &cents
	}
	return fields
}

// ListBooksRequest HTTP图书列表请求
type ListBooksRequest struct {
	Page    int `form:"page" binding:"omitempty,min=1" example:"1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1" example:"20"`
}

// AvailabilityResponse 可用性摘要
type AvailabilityResponse struct {
	QuantityAvailable int64 `json:"quantity_available" example:"42"`
	InStock           bool  `json:"in_stock" example:"true"`
	LowStock          bool  `json:"low_stock" example:"false"`
}

// BookResponse HTTP图书响应
type BookResponse struct {
	ID            string               `json:"id" example:"7f6f8cbd-96f9-4cf4-8cbb-2a6ec3a5d9b1"`
	Title         string               `json:"title" example:"The Go Programming Language"`
	Subtitle      string               `json:"subtitle,omitempty" example:""`
	Authors       []string             `json:"authors"`
	Genres        []string             `json:"genres"`
	Description   string               `json:"description"`
	Price         float64              `json:"price" example:"39.99"` // 价格(美元)
	CoverImageURL string               `json:"cover_image_url"`
	Rating        *float64             `json:"rating,omitempty" example:"4.6"`
	Availability  AvailabilityResponse `json:"availability"`
	CreatedAt     string               `json:"created_at" example:"2026-01-15 10:30:00"`
	UpdatedAt     string               `json:"updated_at" example:"2026-01-15 10:30:00"`
}

// ToBookResponse 领域实体+可用性 → HTTP响应
func ToBookResponse(b *book.Book, a inventory.Availability) *BookResponse {
	return &BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Subtitle:      b.Subtitle,
		Authors:       b.Authors,
		Genres:        b.Genres,
		Description:   b.Description,
		Price:         CentsToDollars(b.PriceCents),
		CoverImageURL: b.CoverImageURL,
		Rating:        b.Rating,
		Availability:  ToAvailabilityResponse(a),
		CreatedAt:     b.CreatedAt.Format(timeLayout),
		UpdatedAt:     b.UpdatedAt.Format(timeLayout),
	}
}

// ToAvailabilityResponse 可用性摘要 → HTTP响应
func ToAvailabilityResponse(a inventory.Availability) AvailabilityResponse {
	return AvailabilityResponse{
		QuantityAvailable: a.QuantityAvailable,
		InStock:           a.InStock,
		LowStock:          a.LowStock,
	}
}

// DollarsToCents 美元(两位小数) → 美分
// 四舍五入消除浮点数表示误差(如39.99*100=3998.9999...)
func DollarsToCents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}

// CentsToDollars 美分 → 美元
func CentsToDollars(cents int64) float64 {
	return float64(cents) / 100.0
}
