package mysql

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bookverse/inventory/internal/domain/inventory"
)

const testReorderPoint = 5

// readRecord 直接读取库存记录行(绕过仓储,验证持久化状态用)
func readRecord(t *testing.T, db *gorm.DB, bookID string) *InventoryRecordModel {
	t.Helper()
	var model InventoryRecordModel
	require.NoError(t, db.Where("book_id = ?", bookID).First(&model).Error)
	return &model
}

// TestInventoryRepository_Adjust_Scenario 测试完整调整场景:+50 → -3 → -100被拒绝
func TestInventoryRepository_Adjust_Scenario(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db, testReorderPoint)
	ctx := context.Background()
	bookID := uuid.New().String()

	// 入库50
	tx1, err := repo.Adjust(ctx, bookID, 50, "到货")
	require.NoError(t, err)
	assert.Equal(t, inventory.TransactionStockIn, tx1.TransactionType)
	assert.Equal(t, int64(0), tx1.PreviousQuantity)
	assert.Equal(t, int64(50), tx1.NewQuantity)
	assert.False(t, tx1.CreatedAt.IsZero(), "返回的流水必须带上落库时分配的时间戳")

	// 出库3
	tx2, err := repo.Adjust(ctx, bookID, -3, "")
	require.NoError(t, err)
	assert.Equal(t, inventory.TransactionStockOut, tx2.TransactionType)
	assert.Equal(t, int64(50), tx2.PreviousQuantity)
	assert.Equal(t, int64(47), tx2.NewQuantity)

	record := readRecord(t, db, bookID)
	assert.Equal(t, int64(47), record.QuantityAvailable)
	assert.Equal(t, int64(47), record.QuantityTotal, "总量与可用数量同步变动")

	// 超额出库被拒绝,且无任何副作用
	_, err = repo.Adjust(ctx, bookID, -100, "")
	assert.ErrorIs(t, err, inventory.ErrNegativeInventory)

	record = readRecord(t, db, bookID)
	assert.Equal(t, int64(47), record.QuantityAvailable, "被拒绝的调整不改变库存")

	var txCount int64
	db.Model(&StockTransactionModel{}).Where("book_id = ?", bookID).Count(&txCount)
	assert.Equal(t, int64(2), txCount, "被拒绝的调整不产生流水")
}

// TestInventoryRepository_Adjust_ZeroDelta 测试零调整(盘点确认)
func TestInventoryRepository_Adjust_ZeroDelta(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db, testReorderPoint)
	ctx := context.Background()
	bookID := uuid.New().String()

	tx, err := repo.Adjust(ctx, bookID, 0, "盘点确认")
	require.NoError(t, err)
	assert.Equal(t, inventory.TransactionAdjustment, tx.TransactionType)
	assert.Equal(t, int64(0), tx.PreviousQuantity)
	assert.Equal(t, int64(0), tx.NewQuantity)
}

// TestInventoryRepository_Adjust_ExactlyToZero 测试刚好减到0是合法的
func TestInventoryRepository_Adjust_ExactlyToZero(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db, testReorderPoint)
	ctx := context.Background()
	bookID := uuid.New().String()

	_, err := repo.Adjust(ctx, bookID, 10, "")
	require.NoError(t, err)

	tx, err := repo.Adjust(ctx, bookID, -10, "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), tx.NewQuantity)

	// 再减1被拒绝
	_, err = repo.Adjust(ctx, bookID, -1, "")
	assert.ErrorIs(t, err, inventory.ErrNegativeInventory)
}

// TestInventoryRepository_Adjust_LazyCreate 测试首次调整时惰性创建记录
func TestInventoryRepository_Adjust_LazyCreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db, testReorderPoint)
	ctx := context.Background()
	bookID := uuid.New().String()

	// 未建档的图书直接出库:记录从0开始,立即被拒绝
	_, err := repo.Adjust(ctx, bookID, -1, "")
	assert.ErrorIs(t, err, inventory.ErrNegativeInventory)

	// 拒绝时整个事务回滚,惰性创建的记录也不会落库
	var count int64
	db.Model(&InventoryRecordModel{}).Where("book_id = ?", bookID).Count(&count)
	assert.Equal(t, int64(0), count)

	// 入库成功后记录才真正建档
	_, err = repo.Adjust(ctx, bookID, 10, "")
	require.NoError(t, err)
	record := readRecord(t, db, bookID)
	assert.Equal(t, int64(10), record.QuantityAvailable)
	assert.Equal(t, int64(10), record.QuantityTotal)
	assert.Equal(t, int64(testReorderPoint), record.ReorderPoint)
}

// TestInventoryRepository_BatchGetByBookIDs 测试批量查询(只读,不惰性创建)
func TestInventoryRepository_BatchGetByBookIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInventoryRepository(db, testReorderPoint)
	ctx := context.Background()

	withStock := uuid.New().String()
	_, err := repo.Adjust(ctx, withStock, 10, "")
	require.NoError(t, err)

	missing := uuid.New().String()

	records, err := repo.BatchGetByBookIDs(ctx, []string{withStock, missing})
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Contains(t, records, withStock)
	assert.NotContains(t, records, missing)

	// 只读路径不创建记录
	var count int64
	db.Model(&InventoryRecordModel{}).Where("book_id = ?", missing).Count(&count)
	assert.Equal(t, int64(0), count)
}

// TestInventoryRepository_ListDetails 测试库存列表:只含在架图书,低库存过滤
func TestInventoryRepository_ListDetails(t *testing.T) {
	db := setupTestDB(t)
	invRepo := NewInventoryRepository(db, testReorderPoint)
	bookRepo := NewBookRepository(db)
	ctx := context.Background()

	// 在架图书:库存42(充足)
	plentiful := newBook("Plentiful")
	require.NoError(t, bookRepo.Create(ctx, plentiful))
	_, err := invRepo.Adjust(ctx, plentiful.ID, 42, "")
	require.NoError(t, err)

	// 在架图书:库存3(低库存,3<=5)
	low := newBook("Low Stock")
	require.NoError(t, bookRepo.Create(ctx, low))
	_, err = invRepo.Adjust(ctx, low.ID, 3, "")
	require.NoError(t, err)

	// 下架图书:有库存但不应出现在列表中
	inactive := newBook("Inactive")
	require.NoError(t, bookRepo.Create(ctx, inactive))
	_, err = invRepo.Adjust(ctx, inactive.ID, 100, "")
	require.NoError(t, err)
	inactive.Deactivate()
	require.NoError(t, bookRepo.Update(ctx, inactive))

	// 全量列表:只有2条(下架的被过滤)
	details, total, err := invRepo.ListDetails(ctx, inventory.ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, details, 2)

	// 低库存过滤:只有1条
	details, total, err = invRepo.ListDetails(ctx, inventory.ListParams{Page: 1, PageSize: 10, LowStockOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, details, 1)
	assert.Equal(t, low.ID, details[0].Record.BookID)
	assert.Equal(t, "Low Stock", details[0].BookTitle)
}

// TestInventoryRepository_ListDetails_LowStockBoundary 测试低库存边界:刚好等于阈值
func TestInventoryRepository_ListDetails_LowStockBoundary(t *testing.T) {
	db := setupTestDB(t)
	invRepo := NewInventoryRepository(db, testReorderPoint)
	bookRepo := NewBookRepository(db)
	ctx := context.Background()

	atThreshold := newBook("At Threshold")
	require.NoError(t, bookRepo.Create(ctx, atThreshold))
	_, err := invRepo.Adjust(ctx, atThreshold.ID, testReorderPoint, "")
	require.NoError(t, err)

	aboveThreshold := newBook("Above Threshold")
	require.NoError(t, bookRepo.Create(ctx, aboveThreshold))
	_, err = invRepo.Adjust(ctx, aboveThreshold.ID, testReorderPoint+1, "")
	require.NoError(t, err)

	details, total, err := invRepo.ListDetails(ctx, inventory.ListParams{Page: 1, PageSize: 10, LowStockOnly: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total, "available==reorder_point算低库存,+1不算")
	require.Len(t, details, 1)
	assert.Equal(t, atThreshold.ID, details[0].Record.BookID)
}

// TestInventoryRepository_GetDetailByBookID 测试单本库存详情
func TestInventoryRepository_GetDetailByBookID(t *testing.T) {
	db := setupTestDB(t)
	invRepo := NewInventoryRepository(db, testReorderPoint)
	bookRepo := NewBookRepository(db)
	ctx := context.Background()

	b := newBook("With Title")
	require.NoError(t, bookRepo.Create(ctx, b))
	require.NoError(t, invRepo.Create(ctx, inventory.NewZeroStockRecord(b.ID, testReorderPoint)))

	detail, err := invRepo.GetDetailByBookID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "With Title", detail.BookTitle)
	assert.Equal(t, int64(0), detail.Record.QuantityAvailable)

	// 库存档案不存在:不惰性创建,直接返回不存在
	_, err = invRepo.GetDetailByBookID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, inventory.ErrInventoryNotFound)

	// 有库存档案但图书不存在(先于目录建档的库存):同样视为不存在
	orphan := uuid.New().String()
	_, err = invRepo.Adjust(ctx, orphan, 3, "")
	require.NoError(t, err)
	_, err = invRepo.GetDetailByBookID(ctx, orphan)
	assert.ErrorIs(t, err, inventory.ErrInventoryNotFound)
}
