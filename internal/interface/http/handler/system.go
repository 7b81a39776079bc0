package handler

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookverse/inventory/internal/interface/http/middleware"
	"github.com/bookverse/inventory/pkg/response"
)

// 服务元信息(构建时通过-ldflags注入版本号)
var (
	ServiceName = "bookverse-inventory"
	Version     = "dev"
)

// SystemHandler 系统HTTP处理器(健康检查、服务信息、调用方身份)
type SystemHandler struct {
	db *gorm.DB
}

// NewSystemHandler 创建系统处理器
func NewSystemHandler(db *gorm.DB) *SystemHandler {
	return &SystemHandler{db: db}
}

// Health 健康检查
// @Summary      健康检查
// @Description  检查服务与数据库连接状态
// @Tags         系统
// @Produce      json
// @Success      200 {object} response.Response
// @Failure      500 {object} response.Response "数据库不可用"
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		response.ErrorWithCode(c, 50001, "数据库不可用")
		return
	}

	response.Success(c, gin.H{
		"status":  "healthy",
		"service": ServiceName,
	})
}

// Info 服务信息
// @Summary      服务信息
// @Description  返回服务名称与版本
// @Tags         系统
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /info [get]
func (h *SystemHandler) Info(c *gin.Context) {
	response.Success(c, gin.H{
		"service": ServiceName,
		"version": Version,
	})
}

// Me 调用方身份
// @Summary      调用方身份
// @Description  返回当前Token解析出的调用方信息(调试用)
// @Tags         系统
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Failure      401 {object} response.Response "未认证"
// @Router       /auth/me [get]
func (h *SystemHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.ErrorWithCode(c, 40100, "缺少认证信息")
		return
	}

	response.Success(c, gin.H{
		"user_id": claims.UserID,
		"email":   claims.Email,
		"name":    claims.Name,
		"roles":   claims.Roles,
		"scopes":  claims.Scopes,
	})
}
