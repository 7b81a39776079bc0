package book

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// validBook 构造一个通过全部校验的图书
func validBook() *Book {
	rating := 4.5
	return &Book{
		ID:            "book-1",
		Title:         "The Go Programming Language",
		Authors:       []string{"Alan A. A. Donovan", "Brian W. Kernighan"},
		Genres:        []string{"Programming"},
		Description:   "The authoritative resource for Go.",
		PriceCents:    3999,
		CoverImageURL: "https://example.com/cover.jpg",
		Rating:        &rating,
		IsActive:      true,
	}
}

// TestBook_Validate 测试实体业务约束
func TestBook_Validate(t *testing.T) {
	assert.NoError(t, validBook().Validate())

	t.Run("书名为空", func(t *testing.T) {
		b := validBook()
		b.Title = ""
		assert.ErrorIs(t, b.Validate(), ErrInvalidTitle)
	})

	t.Run("书名超长", func(t *testing.T) {
		b := validBook()
		b.Title = strings.Repeat("a", MaxTitleLen+1)
		assert.ErrorIs(t, b.Validate(), ErrInvalidTitle)
	})

	t.Run("书名刚好500字符合法", func(t *testing.T) {
		b := validBook()
		b.Title = strings.Repeat("a", MaxTitleLen)
		assert.NoError(t, b.Validate())
	})

	t.Run("作者列表为空", func(t *testing.T) {
		b := validBook()
		b.Authors = nil
		assert.ErrorIs(t, b.Validate(), ErrEmptyAuthors)
	})

	t.Run("分类列表为空", func(t *testing.T) {
		b := validBook()
		b.Genres = []string{}
		assert.ErrorIs(t, b.Validate(), ErrEmptyGenres)
	})

	t.Run("描述为空", func(t *testing.T) {
		b := validBook()
		b.Description = ""
		assert.ErrorIs(t, b.Validate(), ErrEmptyDescription)
	})

	t.Run("价格必须大于0", func(t *testing.T) {
		b := validBook()
		b.PriceCents = 0
		assert.ErrorIs(t, b.Validate(), ErrInvalidPrice)
		b.PriceCents = -100
		assert.ErrorIs(t, b.Validate(), ErrInvalidPrice)
	})

	t.Run("评分超出范围", func(t *testing.T) {
		b := validBook()
		bad := 5.1
		b.Rating = &bad
		assert.ErrorIs(t, b.Validate(), ErrInvalidRating)

		neg := -0.1
		b.Rating = &neg
		assert.ErrorIs(t, b.Validate(), ErrInvalidRating)
	})

	t.Run("评分可以不提供", func(t *testing.T) {
		b := validBook()
		b.Rating = nil
		assert.NoError(t, b.Validate())
	})
}

// TestBook_Apply 测试部分更新:nil字段保持原值
func TestBook_Apply(t *testing.T) {
	b := validBook()
	origAuthors := b.Authors
	origUpdatedAt := b.UpdatedAt

	newTitle := "Updated Title"
	newPrice := int64(4999)
	err := b.Apply(UpdateFields{
		Title:      &newTitle,
		PriceCents: &newPrice,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Updated Title", b.Title)
	assert.Equal(t, int64(4999), b.PriceCents)
	assert.Equal(t, origAuthors, b.Authors, "未提供的字段保持原值")
	assert.True(t, b.UpdatedAt.After(origUpdatedAt))
}

// TestBook_Apply_Invalid 测试更新后的实体必须仍满足约束
func TestBook_Apply_Invalid(t *testing.T) {
	b := validBook()
	empty := ""
	err := b.Apply(UpdateFields{Title: &empty})
	assert.ErrorIs(t, err, ErrInvalidTitle)
}

// TestBook_Deactivate 测试软删除标记
func TestBook_Deactivate(t *testing.T) {
	b := validBook()
	assert.True(t, b.IsActive)

	b.Deactivate()
	assert.False(t, b.IsActive)
}
