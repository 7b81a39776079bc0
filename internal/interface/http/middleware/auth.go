package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bookverse/inventory/internal/infrastructure/persistence/redis"
	"github.com/bookverse/inventory/pkg/jwt"
	"github.com/bookverse/inventory/pkg/response"
)

// AuthMiddleware JWT认证中间件
// 设计说明：
// 1. 从Header提取Token（格式：Authorization: Bearer <token>）
// 2. 检查Token黑名单（吊销、泄露后强制失效）
// 3. 验证签名与有效期，将调用方身份注入Context
// 4. 本服务不签发Token，只验证平台认证服务下发的Token
type AuthMiddleware struct {
	jwtManager *jwt.Manager
	tokenStore *redis.TokenStore
}

// NewAuthMiddleware 创建认证中间件
// tokenStore为nil时跳过黑名单检查（Redis未启用的部署形态）
func NewAuthMiddleware(jwtManager *jwt.Manager, tokenStore *redis.TokenStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		tokenStore: tokenStore,
	}
}

// RequireAuth 要求携带有效Token
// 使用方式：
//
//	books := r.Group("/api/v1/books")
//	books.POST("", authMiddleware.RequireAuth(), handler.CreateBook)
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 从Header提取Token
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.ErrorWithCode(c, 40100, "缺少认证信息")
			c.Abort()
			return
		}

		// 2. 解析Token格式
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.ErrorWithCode(c, 40101, "Token格式错误")
			c.Abort()
			return
		}

		tokenString := parts[1]

		// 3. 检查Token是否在黑名单中
		if m.tokenStore != nil {
			isBlacklisted, err := m.tokenStore.IsInBlacklist(c.Request.Context(), tokenString)
			if err != nil {
				response.ErrorWithCode(c, 50000, "验证Token失败")
				c.Abort()
				return
			}
			if isBlacklisted {
				response.ErrorWithCode(c, 40102, "Token已失效")
				c.Abort()
				return
			}
		}

		// 4. 验证Token并解析Claims
		claims, err := m.jwtManager.ParseToken(tokenString)
		if err != nil {
			response.Error(c, err) // 自动处理ErrTokenExpired、ErrInvalidToken
			c.Abort()
			return
		}

		// 5. 将调用方身份注入到Context（后续Handler可以使用）
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("name", claims.Name)
		c.Set("claims", claims)

		c.Next()
	}
}

// =========================================
// Context辅助函数（供Handler使用）
// =========================================

// GetUserID 从Context获取当前调用方用户ID（未认证返回空字符串）
func GetUserID(c *gin.Context) string {
	if userID, exists := c.Get("user_id"); exists {
		if uid, ok := userID.(string); ok {
			return uid
		}
	}
	return ""
}

// GetClaims 从Context获取完整Claims（未认证返回nil）
func GetClaims(c *gin.Context) *jwt.Claims {
	if v, exists := c.Get("claims"); exists {
		if claims, ok := v.(*jwt.Claims); ok {
			return claims
		}
	}
	return nil
}
