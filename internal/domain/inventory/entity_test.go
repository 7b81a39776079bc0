package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDeriveTransactionType 测试交易类型由调整量符号推导
func TestDeriveTransactionType(t *testing.T) {
	assert.Equal(t, TransactionStockIn, DeriveTransactionType(50))
	assert.Equal(t, TransactionStockIn, DeriveTransactionType(1))
	assert.Equal(t, TransactionStockOut, DeriveTransactionType(-1))
	assert.Equal(t, TransactionStockOut, DeriveTransactionType(-100))
	assert.Equal(t, TransactionAdjustment, DeriveTransactionType(0))
}

// TestRecord_LowStock 测试低库存判定(边界值包含)
func TestRecord_LowStock(t *testing.T) {
	r := &Record{QuantityAvailable: 5, ReorderPoint: 5}
	assert.True(t, r.LowStock(), "available==reorder_point也算低库存")

	r.QuantityAvailable = 6
	assert.False(t, r.LowStock())

	r.QuantityAvailable = 0
	assert.True(t, r.LowStock())
}

// TestRecord_CanAdjust 测试非负不变式校验
func TestRecord_CanAdjust(t *testing.T) {
	r := &Record{QuantityAvailable: 10, QuantityTotal: 10}

	assert.True(t, r.CanAdjust(-10), "刚好减到0是合法的")
	assert.False(t, r.CanAdjust(-11))
	assert.True(t, r.CanAdjust(0))
	assert.True(t, r.CanAdjust(100))

	zero := &Record{QuantityAvailable: 0, QuantityTotal: 0}
	assert.False(t, zero.CanAdjust(-1))
	assert.True(t, zero.CanAdjust(0))

	// 总量变负同样拒绝(两个数量各自满足>=0不变式)
	skewed := &Record{QuantityAvailable: 10, QuantityTotal: 3}
	assert.False(t, skewed.CanAdjust(-5), "可用数量够减但总量会变负")
	assert.True(t, skewed.CanAdjust(-3))
}

// TestRecord_Apply 测试调整应用:可用数量和总量同步变动
func TestRecord_Apply(t *testing.T) {
	r := &Record{QuantityAvailable: 0, QuantityTotal: 0}

	r.Apply(50)
	assert.Equal(t, int64(50), r.QuantityAvailable)
	assert.Equal(t, int64(50), r.QuantityTotal)

	r.Apply(-3)
	assert.Equal(t, int64(47), r.QuantityAvailable)
	assert.Equal(t, int64(47), r.QuantityTotal, "出库同步减少总量,两者永远一起变动")

	r.Apply(0)
	assert.Equal(t, int64(47), r.QuantityAvailable)
	assert.Equal(t, int64(47), r.QuantityTotal)
}

// TestRecord_Availability 测试可用性摘要导出
func TestRecord_Availability(t *testing.T) {
	r := &Record{QuantityAvailable: 42, ReorderPoint: 5}
	a := r.Availability()
	assert.Equal(t, int64(42), a.QuantityAvailable)
	assert.True(t, a.InStock)
	assert.False(t, a.LowStock)

	empty := &Record{QuantityAvailable: 0, ReorderPoint: 5}
	a = empty.Availability()
	assert.False(t, a.InStock)
	assert.True(t, a.LowStock)
}

// TestUnavailableAvailability 测试无库存记录时的默认摘要
func TestUnavailableAvailability(t *testing.T) {
	a := UnavailableAvailability()
	assert.Equal(t, int64(0), a.QuantityAvailable)
	assert.False(t, a.InStock)
	assert.True(t, a.LowStock)
}

// TestNewStockTransaction 测试流水审计字段
func TestNewStockTransaction(t *testing.T) {
	tx := NewStockTransaction("book-1", 50, 0, "到货")
	assert.NotEmpty(t, tx.ID)
	assert.Equal(t, TransactionStockIn, tx.TransactionType)
	assert.Equal(t, int64(0), tx.PreviousQuantity)
	assert.Equal(t, int64(50), tx.NewQuantity)

	// 审计链:上一条的NewQuantity等于下一条的PreviousQuantity
	tx2 := NewStockTransaction("book-1", -3, tx.NewQuantity, "")
	assert.Equal(t, TransactionStockOut, tx2.TransactionType)
	assert.Equal(t, int64(50), tx2.PreviousQuantity)
	assert.Equal(t, int64(47), tx2.NewQuantity)
}

// TestNewZeroStockRecord 测试惰性创建的零库存记录
func TestNewZeroStockRecord(t *testing.T) {
	r := NewZeroStockRecord("book-1", 5)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "book-1", r.BookID)
	assert.Equal(t, int64(0), r.QuantityAvailable)
	assert.Equal(t, int64(0), r.QuantityTotal)
	assert.Equal(t, int64(5), r.ReorderPoint)
	assert.True(t, r.LowStock(), "零库存记录一定是低库存")
}
