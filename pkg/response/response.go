package response

import (
	"log"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/bookverse/inventory/pkg/errors"
)

// Response 统一响应结构
// 设计说明：
// 1. Code是业务错误码（非HTTP状态码），方便客户端判断错误类型
// 2. Message是用户友好的提示信息
// 3. Data是业务数据，成功时返回，失败时为null
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应（Code=0表示成功）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 创建成功响应（HTTP 201）
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// NoContent 删除成功响应（HTTP 204，无响应体）
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应（自动处理AppError）
// 设计说明：
// HTTP状态码由AppError的错误码区间推导（401xx→401、404xx→404等），
// 内部错误只记录到服务端日志，不返回给客户端。
//
// 用法：
//
//	tx, err := adjustUseCase.Execute(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	// 服务端错误记录根因日志；业务拒绝（如库存为负）属于正常结果，不记错误日志
	if appErr.Err != nil && appErr.HTTPStatus() >= http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr.Err)
	}

	c.JSON(appErr.HTTPStatus(), Response{
		Code:    appErr.Code,
		Message: appErr.Message,
		Data:    nil,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	Error(c, apperrors.New(code, message))
}

// =========================================
// 分页响应结构
// =========================================

// PageMeta 分页元数据
// 设计说明：总页数至少为1（空结果也算1页），has_next/has_prev由页码推导
type PageMeta struct {
	Total   int64 `json:"total"`    // 总记录数
	Page    int   `json:"page"`     // 当前页码
	PerPage int   `json:"per_page"` // 每页大小
	Pages   int   `json:"pages"`    // 总页数
	HasNext bool  `json:"has_next"` // 是否有下一页
	HasPrev bool  `json:"has_prev"` // 是否有上一页
}

// NewPageMeta 创建分页元数据
func NewPageMeta(total int64, page, perPage int) PageMeta {
	pages := int(math.Ceil(float64(total) / float64(perPage)))
	if pages < 1 {
		pages = 1
	}

	return PageMeta{
		Total:   total,
		Page:    page,
		PerPage: perPage,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}

// PageData 分页数据封装
type PageData struct {
	List       interface{} `json:"list"`
	Pagination PageMeta    `json:"pagination"`
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, list interface{}, total int64, page, perPage int) {
	Success(c, &PageData{
		List:       list,
		Pagination: NewPageMeta(total, page, perPage),
	})
}
