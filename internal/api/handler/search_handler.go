package handler

import (
	"tubehub/internal/api/dto"
	"tubehub/internal/api/response"
	"tubehub/internal/service"
	"tubehub/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchVideos GET /api/v1/search/video?q&page&limit
func (h *SearchHandler) SearchVideos(c *gin.Context) {
	var req dto.SearchVideoRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	page, err := h.searchService.SearchVideos(c.Request.Context(), &req)
	if err != nil {
		logger.Error("Search videos failed", zap.String("query", req.Q), zap.Error(err))
		response.InternalError(c, "搜索失败，请稍后重试")
		return
	}

	respondPage(c, page, "搜索成功", "没有匹配的视频")
}
