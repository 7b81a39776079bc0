package handler

import (
	"github.com/gin-gonic/gin"

	appinventory "github.com/bookverse/inventory/internal/application/inventory"
	"github.com/bookverse/inventory/internal/interface/http/dto"
	"github.com/bookverse/inventory/pkg/response"
)

// InventoryHandler 库存HTTP处理器
type InventoryHandler struct {
	listInventoryUseCase   *appinventory.ListInventoryUseCase
	getInventoryUseCase    *appinventory.GetInventoryUseCase
	adjustInventoryUseCase *appinventory.AdjustInventoryUseCase
}

// NewInventoryHandler 创建库存处理器
func NewInventoryHandler(
	listInventoryUseCase *appinventory.ListInventoryUseCase,
	getInventoryUseCase *appinventory.GetInventoryUseCase,
	adjustInventoryUseCase *appinventory.AdjustInventoryUseCase,
) *InventoryHandler {
	return &InventoryHandler{
		listInventoryUseCase:   listInventoryUseCase,
		getInventoryUseCase:    getInventoryUseCase,
		adjustInventoryUseCase: adjustInventoryUseCase,
	}
}

// ListInventory 库存列表
// @Summary      库存列表
// @Description  分页查询库存详情(只含在架图书,可过滤低库存)
// @Tags         库存
// @Produce      json
// @Param        page query int false "页码(默认1)"
// @Param        per_page query int false "每页数量(默认20,最大100)"
// @Param        low_stock query bool false "只看低库存"
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /api/v1/inventory [get]
func (h *InventoryHandler) ListInventory(c *gin.Context) {
	var req dto.ListInventoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.listInventoryUseCase.Execute(c.Request.Context(), appinventory.ListInventoryRequest{
		Page:         req.Page,
		PageSize:     req.PerPage,
		LowStockOnly: req.LowStockOnly,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.ToInventoryResponses(result.Items),
		result.Total, result.Page, result.PageSize)
}

// GetInventory 单本库存详情
// @Summary      单本库存详情
// @Description  查询图书的库存记录(库存记录或图书不存在返回404)
// @Tags         库存
// @Produce      json
// @Param        book_id path string true "图书ID"
// @Success      200 {object} response.Response{data=dto.InventoryResponse}
// @Failure      404 {object} response.Response "库存记录不存在"
// @Router       /api/v1/inventory/{book_id} [get]
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	detail, err := h.getInventoryUseCase.Execute(c.Request.Context(), c.Param("book_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToInventoryResponse(detail))
}

// AdjustInventory 调整库存
// @Summary      调整库存
// @Description  原子调整库存:正数入库,负数出库,0盘点确认;调整后为负被拒绝
// @Tags         库存
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        book_id query string true "图书ID"
// @Param        request body dto.AdjustInventoryRequest true "调整量与备注"
// @Success      200 {object} response.Response{data=dto.TransactionResponse}
// @Failure      400 {object} response.Response "调整后库存为负或参数错误"
// @Failure      401 {object} response.Response "未认证"
// @Router       /api/v1/inventory/adjust [post]
func (h *InventoryHandler) AdjustInventory(c *gin.Context) {
	bookID := c.Query("book_id")
	if bookID == "" {
		response.ErrorWithCode(c, 40901, "参数错误: 缺少book_id")
		return
	}

	var req dto.AdjustInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	tx, err := h.adjustInventoryUseCase.Execute(c.Request.Context(), appinventory.AdjustInventoryRequest{
		BookID: bookID,
		Delta:  *req.QuantityChange,
		Notes:  req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToTransactionResponse(tx))
}
