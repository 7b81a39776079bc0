package mysql

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookverse/inventory/internal/domain/book"
)

// newBook 构造测试图书
func newBook(title string) *book.Book {
	return &book.Book{
		ID:            uuid.New().String(),
		Title:         title,
		Authors:       []string{"Author One", "Author Two"},
		Genres:        []string{"Programming", "Go"},
		Description:   "desc",
		PriceCents:    3999,
		CoverImageURL: "https://example.com/cover.jpg",
		IsActive:      true,
	}
}

// TestBookRepository_CreateAndFind 测试创建与查询(JSON列表字段保持顺序)
func TestBookRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	b := newBook("The Go Programming Language")
	require.NoError(t, repo.Create(ctx, b))

	found, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.Title, found.Title)
	assert.Equal(t, []string{"Author One", "Author Two"}, found.Authors, "作者列表保持顺序")
	assert.Equal(t, []string{"Programming", "Go"}, found.Genres)
	assert.Equal(t, int64(3999), found.PriceCents)
	assert.True(t, found.IsActive)
}

// TestBookRepository_FindByID_NotFound 测试不存在的图书
func TestBookRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

// TestBookRepository_SoftDelete 测试软删除:下架后查询视同不存在,物理行保留
func TestBookRepository_SoftDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	b := newBook("To Be Deleted")
	require.NoError(t, repo.Create(ctx, b))

	b.Deactivate()
	require.NoError(t, repo.Update(ctx, b))

	// 下架后FindByID返回not found
	_, err := repo.FindByID(ctx, b.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)

	// 物理行保留
	var count int64
	db.Model(&BookModel{}).Where("id = ?", b.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	// IncludeInactive可以看到下架图书
	books, total, err := repo.List(ctx, book.ListParams{Page: 1, PageSize: 10, IncludeInactive: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, books, 1)
	assert.False(t, books[0].IsActive)
}

// TestBookRepository_List_Pagination 测试分页:25本图书按每页10本分3页
func TestBookRepository_List_Pagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		require.NoError(t, repo.Create(ctx, newBook(fmt.Sprintf("Book %02d", i))))
	}

	page1, total, err := repo.List(ctx, book.ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, page1, 10)

	page3, total, err := repo.List(ctx, book.ListParams{Page: 3, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, page3, 5, "最后一页只有5本")

	page4, _, err := repo.List(ctx, book.ListParams{Page: 4, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, page4, "超出范围的页返回空列表而非错误")
}

// TestBookRepository_List_ExcludesInactive 测试列表默认过滤下架图书
func TestBookRepository_List_ExcludesInactive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBookRepository(db)
	ctx := context.Background()

	active := newBook("Active")
	require.NoError(t, repo.Create(ctx, active))

	inactive := newBook("Inactive")
	require.NoError(t, repo.Create(ctx, inactive))
	inactive.Deactivate()
	require.NoError(t, repo.Update(ctx, inactive))

	books, total, err := repo.List(ctx, book.ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, books, 1)
	assert.Equal(t, "Active", books[0].Title)
}
