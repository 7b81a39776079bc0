package inventory

import (
	apperrors "github.com/bookverse/inventory/pkg/errors"
)

// 库存领域错误定义
var (
	// ErrInventoryNotFound 库存记录不存在
	ErrInventoryNotFound = apperrors.New(apperrors.ErrCodeInventoryNotFound, "库存记录不存在")

	// ErrNegativeInventory 调整后库存为负,操作被拒绝(无任何副作用)
	ErrNegativeInventory = apperrors.New(apperrors.ErrCodeNegativeInventory, "调整后库存为负数，操作被拒绝")

	// ErrNotesTooLong 交易备注超长
	ErrNotesTooLong = apperrors.New(apperrors.ErrCodeInvalidParams, "备注不超过500字符")
)
