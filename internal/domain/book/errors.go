package book

import (
	apperrors "github.com/bookverse/inventory/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在(或已下架)
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrInvalidTitle 书名为空或超长
	ErrInvalidTitle = apperrors.New(apperrors.ErrCodeInvalidParams, "书名不能为空且不超过500字符")

	// ErrInvalidSubtitle 副标题超长
	ErrInvalidSubtitle = apperrors.New(apperrors.ErrCodeInvalidParams, "副标题不超过500字符")

	// ErrEmptyAuthors 作者列表为空
	ErrEmptyAuthors = apperrors.New(apperrors.ErrCodeInvalidParams, "作者列表至少包含1项")

	// ErrEmptyGenres 分类列表为空
	ErrEmptyGenres = apperrors.New(apperrors.ErrCodeInvalidParams, "分类列表至少包含1项")

	// ErrEmptyDescription 描述为空
	ErrEmptyDescription = apperrors.New(apperrors.ErrCodeInvalidParams, "图书描述不能为空")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "价格必须大于0")

	// ErrEmptyCoverImageURL 封面URL为空
	ErrEmptyCoverImageURL = apperrors.New(apperrors.ErrCodeInvalidParams, "封面图片URL不能为空")

	// ErrInvalidRating 评分超出范围
	ErrInvalidRating = apperrors.New(apperrors.ErrCodeInvalidParams, "评分必须在0.0-5.0之间")
)
