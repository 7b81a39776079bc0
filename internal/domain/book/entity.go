package book

import (
	"time"
	"unicode/utf8"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book是图书目录聚合的根实体,包含图书的全部元数据
// 2. 价格使用int64存储"美分"为单位(避免浮点数精度问题),API层负责与
//    两位小数的美元金额互相转换
// 3. ID是UUID字符串,便于分布式环境下跨服务引用
// 4. IsActive=false表示软删除:图书从活跃目录中消失,但行、库存记录
//    和交易流水全部保留(审计与引用完整性)
type Book struct {
	ID            string
	Title         string   // 书名(1-500字符)
	Subtitle      string   // 副标题(可选,<=500字符)
	Authors       []string // 作者列表(有序,至少1个)
	Genres        []string // 分类列表(有序,至少1个)
	Description   string   // 图书描述(必填)
	PriceCents    int64    // 价格(单位:美分,1美元=100美分),必须>0
	CoverImageURL string   // 封面图片URL(必填)
	Rating        *float64 // 评分(可选,0.0-5.0)
	IsActive      bool     // 是否在架(软删除标记)
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// 字段长度约束
const (
	MaxTitleLen    = 500
	MaxSubtitleLen = 500
)

// Validate 校验图书实体的业务约束
func (b *Book) Validate() error {
	// 长度按字符数计(与varchar(500)列语义一致)
	if b.Title == "" || utf8.RuneCountInString(b.Title) > MaxTitleLen {
		return ErrInvalidTitle
	}

	if utf8.RuneCountInString(b.Subtitle) > MaxSubtitleLen {
		return ErrInvalidSubtitle
	}

	if len(b.Authors) == 0 {
		return ErrEmptyAuthors
	}

	if len(b.Genres) == 0 {
		return ErrEmptyGenres
	}

	if b.Description == "" {
		return ErrEmptyDescription
	}

	if b.PriceCents <= 0 {
		return ErrInvalidPrice
	}

	if b.CoverImageURL == "" {
		return ErrEmptyCoverImageURL
	}

	if b.Rating != nil && (*b.Rating < 0 || *b.Rating > 5) {
		return ErrInvalidRating
	}

	return nil
}

// UpdateFields 部分更新字段集
// 设计说明:
// 每个字段都是指针,nil表示"本次请求未提供该字段,保持原值不变"。
// 这与PUT /books/{id}的部分更新语义一一对应。
type UpdateFields struct {
	Title         *string
	Subtitle      *string
	Authors       []string
	Genres        []string
	Description   *string
	PriceCents    *int64
	CoverImageURL *string
	Rating        *float64
}

// Apply 将提供的字段应用到实体上,未提供的字段保持不变
// 返回应用后的校验结果(保证实体始终满足业务约束)
func (b *Book) Apply(fields UpdateFields) error {
	if fields.Title != nil {
		b.Title = *fields.Title
	}
	if fields.Subtitle != nil {
		b.Subtitle = *fields.Subtitle
	}
	if fields.Authors != nil {
		b.Authors = fields.Authors
	}
	if fields.Genres != nil {
		b.Genres = fields.Genres
	}
	if fields.Description != nil {
		b.Description = *fields.Description
	}
	if fields.PriceCents != nil {
		b.PriceCents = *fields.PriceCents
	}
	if fields.CoverImageURL != nil {
		b.CoverImageURL = *fields.CoverImageURL
	}
	if fields.Rating != nil {
		b.Rating = fields.Rating
	}

	b.UpdatedAt = time.Now()

	return b.Validate()
}

// Deactivate 软删除(下架)
// 物理行保留,库存记录和交易流水不受影响
func (b *Book) Deactivate() {
	b.IsActive = false
	b.UpdatedAt = time.Now()
}
