package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestSuccessEnvelope(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		OK(c, "成功", gin.H{"id": 1})
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "成功", resp.Message)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
}

// “无结果”约定：404 信封仍携带数据且 success 为 false
func TestNotFoundEnvelopeCarriesData(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		JSON(c, http.StatusNotFound, "没有匹配的结果", gin.H{"docs": []int{}})
	})

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotNil(t, resp.Data)
}

func TestErrorEnvelope(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		Conflict(c, "用户名或邮箱已被注册")
	})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	assert.NotNil(t, resp.Errors)
	assert.Empty(t, resp.Errors)
}
