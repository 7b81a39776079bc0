package mysql

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateError 判断是否为唯一索引冲突错误
// MySQL错误码:
// - 1062: Duplicate entry 'xxx' for key 'yyy'
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	// GORM v2的错误判断
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// 兼容检查:MySQL与SQLite的错误信息
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// supportsRowLock 判断当前方言是否支持SELECT ... FOR UPDATE
// SQLite(单写者模型)不支持也不需要行锁,事务本身互斥
func supportsRowLock(db *gorm.DB) bool {
	return db.Dialector.Name() == "mysql"
}
