package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/bookverse/inventory/pkg/errors"
)

// TestNewPageMeta 测试分页元数据计算
func TestNewPageMeta(t *testing.T) {
	t.Run("空结果也算1页", func(t *testing.T) {
		meta := NewPageMeta(0, 1, 20)
		assert.Equal(t, 1, meta.Pages)
		assert.False(t, meta.HasNext)
		assert.False(t, meta.HasPrev)
	})

	t.Run("25条每页10条分3页", func(t *testing.T) {
		meta := NewPageMeta(25, 1, 10)
		assert.Equal(t, int64(25), meta.Total)
		assert.Equal(t, 3, meta.Pages)
		assert.True(t, meta.HasNext)
		assert.False(t, meta.HasPrev)

		meta = NewPageMeta(25, 2, 10)
		assert.True(t, meta.HasNext)
		assert.True(t, meta.HasPrev)

		meta = NewPageMeta(25, 3, 10)
		assert.False(t, meta.HasNext)
		assert.True(t, meta.HasPrev)
	})

	t.Run("整除时不多算一页", func(t *testing.T) {
		meta := NewPageMeta(20, 1, 10)
		assert.Equal(t, 2, meta.Pages)
	})

	t.Run("超出范围的页码没有下一页", func(t *testing.T) {
		meta := NewPageMeta(5, 10, 10)
		assert.Equal(t, 1, meta.Pages)
		assert.False(t, meta.HasNext)
		assert.True(t, meta.HasPrev)
	})
}

// TestError_HTTPStatusMapping 测试错误响应的HTTP状态码推导
func TestError_HTTPStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"资源不存在", apperrors.ErrBookNotFound, http.StatusNotFound, apperrors.ErrCodeBookNotFound},
		{"业务规则拒绝", apperrors.ErrNegativeInventory, http.StatusBadRequest, apperrors.ErrCodeNegativeInventory},
		{"未认证", apperrors.ErrUnauthorized, http.StatusUnauthorized, apperrors.ErrCodeUnauthorized},
		{"Token过期", apperrors.ErrTokenExpired, http.StatusUnauthorized, apperrors.ErrCodeTokenExpired},
		{"内部错误", apperrors.ErrInternal, http.StatusInternalServerError, apperrors.ErrCodeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/test", nil)

			Error(c, tc.err)

			assert.Equal(t, tc.wantStatus, w.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantCode, resp.Code)
			assert.Nil(t, resp.Data)
		})
	}
}

// TestSuccessWithPage 测试分页响应信封结构
func TestSuccessWithPage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SuccessWithPage(c, []string{"a", "b"}, 25, 2, 10)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int `json:"code"`
		Data struct {
			List       []string `json:"list"`
			Pagination PageMeta `json:"pagination"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Code)
	assert.Len(t, resp.Data.List, 2)
	assert.Equal(t, int64(25), resp.Data.Pagination.Total)
	assert.Equal(t, 2, resp.Data.Pagination.Page)
	assert.Equal(t, 10, resp.Data.Pagination.PerPage)
	assert.Equal(t, 3, resp.Data.Pagination.Pages)
	assert.True(t, resp.Data.Pagination.HasNext)
	assert.True(t, resp.Data.Pagination.HasPrev)
}

// TestNoContent 测试204无响应体
func TestNoContent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	NoContent(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
