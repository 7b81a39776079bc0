package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bookverse/inventory/internal/domain/inventory"
	"github.com/bookverse/inventory/internal/infrastructure/persistence/mysql"
	"github.com/bookverse/inventory/pkg/metrics"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&mysql.BookModel{},
		&mysql.InventoryRecordModel{},
		&mysql.StockTransactionModel{},
	))

	return db
}

// fakePublisher 记录发布事件的测试替身
type fakePublisher struct {
	routingKeys []string
	events      []interface{}
}

func (p *fakePublisher) Publish(_ context.Context, routingKey string, message interface{}) error {
	p.routingKeys = append(p.routingKeys, routingKey)
	p.events = append(p.events, message)
	return nil
}

func newAdjustUseCase(db *gorm.DB, publisher EventPublisher) *AdjustInventoryUseCase {
	invRepo := mysql.NewInventoryRepository(db, 5)
	txRepo := mysql.NewTransactionRepository(db)
	return NewAdjustInventoryUseCase(inventory.NewService(invRepo, txRepo), nil, publisher)
}

// TestAdjustInventoryUseCase_Execute 测试调整成功并发布事件
func TestAdjustInventoryUseCase_Execute(t *testing.T) {
	metrics.InitMetrics()
	db := setupTestDB(t)
	publisher := &fakePublisher{}
	uc := newAdjustUseCase(db, publisher)
	bookID := uuid.New().String()

	tx, err := uc.Execute(context.Background(), AdjustInventoryRequest{
		BookID: bookID,
		Delta:  50,
		Notes:  "到货",
	})
	require.NoError(t, err)
	assert.Equal(t, inventory.TransactionStockIn, tx.TransactionType)
	assert.Equal(t, int64(50), tx.NewQuantity)

	// 事件路由键按交易类型区分
	require.Len(t, publisher.routingKeys, 1)
	assert.Equal(t, "inventory.stock_in", publisher.routingKeys[0])

	event, ok := publisher.events[0].(StockAdjustedEvent)
	require.True(t, ok)
	assert.Equal(t, tx.ID, event.TransactionID)
	assert.Equal(t, int64(0), event.PreviousQuantity)
	assert.Equal(t, int64(50), event.NewQuantity)
	assert.False(t, event.OccurredAt.IsZero(), "事件携带流水落库时分配的时间戳")
}

// TestAdjustInventoryUseCase_Execute_Rejected 测试被拒绝的调整:无事件、无副作用
func TestAdjustInventoryUseCase_Execute_Rejected(t *testing.T) {
	metrics.InitMetrics()
	db := setupTestDB(t)
	publisher := &fakePublisher{}
	uc := newAdjustUseCase(db, publisher)
	bookID := uuid.New().String()

	_, err := uc.Execute(context.Background(), AdjustInventoryRequest{
		BookID: bookID,
		Delta:  -1,
	})
	assert.ErrorIs(t, err, inventory.ErrNegativeInventory)
	assert.Empty(t, publisher.routingKeys, "被拒绝的调整不发布事件")
}

// TestAdjustInventoryUseCase_Execute_NotesTooLong 测试备注超长校验
func TestAdjustInventoryUseCase_Execute_NotesTooLong(t *testing.T) {
	metrics.InitMetrics()
	db := setupTestDB(t)
	uc := newAdjustUseCase(db, nil)

	longNotes := make([]byte, inventory.MaxNotesLen+1)
	for i := range longNotes {
		longNotes[i] = 'a'
	}

	_, err := uc.Execute(context.Background(), AdjustInventoryRequest{
		BookID: uuid.New().String(),
		Delta:  1,
		Notes:  string(longNotes),
	})
	assert.ErrorIs(t, err, inventory.ErrNotesTooLong)
}

// TestAdjustInventoryUseCase_Execute_NilPublisher 测试MQ未启用时正常工作
func TestAdjustInventoryUseCase_Execute_NilPublisher(t *testing.T) {
	metrics.InitMetrics()
	db := setupTestDB(t)
	uc := newAdjustUseCase(db, nil)

	tx, err := uc.Execute(context.Background(), AdjustInventoryRequest{
		BookID: uuid.New().String(),
		Delta:  10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), tx.NewQuantity)
}
