package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/bookverse/inventory/internal/application/book"
	"github.com/bookverse/inventory/internal/domain/inventory"
	"github.com/bookverse/inventory/internal/interface/http/dto"
	"github.com/bookverse/inventory/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	createBookUseCase *appbook.CreateBookUseCase
	getBookUseCase    *appbook.GetBookUseCase
	listBooksUseCase  *appbook.ListBooksUseCase
	updateBookUseCase *appbook.UpdateBookUseCase
	deleteBookUseCase *appbook.DeleteBookUseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	createBookUseCase *appbook.CreateBookUseCase,
	getBookUseCase *appbook.GetBookUseCase,
	listBooksUseCase *appbook.ListBooksUseCase,
	updateBookUseCase *appbook.UpdateBookUseCase,
	deleteBookUseCase *appbook.DeleteBookUseCase,
) *BookHandler {
	return &BookHandler{
		createBookUseCase: createBookUseCase,
		getBookUseCase:    getBookUseCase,
		listBooksUseCase:  listBooksUseCase,
		updateBookUseCase: updateBookUseCase,
		deleteBookUseCase: deleteBookUseCase,
	}
}

// CreateBook 创建图书
// @Summary      创建图书
// @Description  创建图书并初始化零库存记录(同一事务)
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未认证"
// @Router       /api/v1/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	// 2. 调用应用层用例(价格美元→美分)
	b, err := h.createBookUseCase.Execute(c.Request.Context(), appbook.CreateBookRequest{
		Title:         req.Title,
		Subtitle:      req.Subtitle,
		Authors:       req.Authors,
		Genres:        req.Genres,
		Description:   req.Description,
		PriceCents:    dto.DollarsToCents(req.Price),
		CoverImageURL: req.CoverImageURL,
		Rating:        req.Rating,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 新建图书的库存为零
	response.Created(c, dto.ToBookResponse(b, inventory.UnavailableAvailability()))
}

// GetBook 图书详情
// @Summary      图书详情
// @Description  查询单本图书详情(附带库存可用性摘要)
// @Tags         图书
// @Produce      json
// @Param        id path string true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	result, err := h.getBookUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToBookResponse(result.Book, result.Availability))
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  分页查询在架图书(每项附带库存可用性摘要)
// @Tags         图书
// @Produce      json
// @Param        page query int false "页码(默认1)"
// @Param        per_page query int false "每页数量(默认20,最大100)"
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /api/v1/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	var req dto.ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.listBooksUseCase.Execute(c.Request.Context(), appbook.ListBooksRequest{
		Page:     req.Page,
		PageSize: req.PerPage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]*dto.BookResponse, len(result.Items))
	for i, item := range result.Items {
		list[i] = dto.ToBookResponse(item.Book, item.Availability)
	}

	response.SuccessWithPage(c, list, result.Total, result.Page, result.PageSize)
}

// UpdateBook 更新图书
// @Summary      更新图书
// @Description  部分更新:只修改请求体中出现的字段
// @Tags         图书
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "图书ID"
// @Param        request body dto.UpdateBookRequest true "待更新字段"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未认证"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	b, err := h.updateBookUseCase.Execute(c.Request.Context(), c.Param("id"), req.ToUpdateFields())
	if err != nil {
		response.Error(c, err)
		return
	}

	// 更新后重新查询详情以附带最新可用性
	result, err := h.getBookUseCase.Execute(c.Request.Context(), b.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToBookResponse(result.Book, result.Availability))
}

// DeleteBook 删除图书(软删除)
// @Summary      删除图书
// @Description  软删除:图书从目录中下架,库存记录和交易流水保留
// @Tags         图书
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "图书ID"
// @Success      204 "删除成功"
// @Failure      401 {object} response.Response "未认证"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	if err := h.deleteBookUseCase.Execute(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
