package handler

import (
	"github.com/gin-gonic/gin"

	apptransaction "github.com/bookverse/inventory/internal/application/transaction"
	"github.com/bookverse/inventory/internal/interface/http/dto"
	"github.com/bookverse/inventory/pkg/response"
)

// TransactionHandler 交易流水HTTP处理器
type TransactionHandler struct {
	listTransactionsUseCase *apptransaction.ListTransactionsUseCase
}

// NewTransactionHandler 创建交易流水处理器
func NewTransactionHandler(listTransactionsUseCase *apptransaction.ListTransactionsUseCase) *TransactionHandler {
	return &TransactionHandler{listTransactionsUseCase: listTransactionsUseCase}
}

// ListTransactions 交易流水列表
// @Summary      交易流水列表
// @Description  分页查询库存交易流水(created_at降序),可按图书过滤
// @Tags         流水
// @Produce      json
// @Param        page query int false "页码(默认1)"
// @Param        per_page query int false "每页数量(默认20,最大100)"
// @Param        book_id query string false "按图书ID过滤"
// @Success      200 {object} response.Response{data=response.PageData}
// @Router       /api/v1/transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var req dto.ListTransactionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.listTransactionsUseCase.Execute(c.Request.Context(), apptransaction.ListTransactionsRequest{
		Page:     req.Page,
		PageSize: req.PerPage,
		BookID:   req.BookID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPage(c, dto.ToTransactionResponses(result.Items),
		result.Total, result.Page, result.PageSize)
}
