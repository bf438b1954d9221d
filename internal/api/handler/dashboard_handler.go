package handler

import (
	"tubehub/internal/api/middleware"
	"tubehub/internal/api/response"
	"tubehub/internal/service"
	"tubehub/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats GET /api/v1/dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)

	stats, err := h.dashboardService.GetChannelStats(c.Request.Context(), currentUserID)
	if err != nil {
		logger.Error("Get channel stats failed", zap.Error(err))
		response.InternalError(c, "获取频道统计失败")
		return
	}

	response.OK(c, "获取频道统计成功", stats)
}

// GetVideos GET /api/v1/dashboard/videos
func (h *DashboardHandler) GetVideos(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)
	params := parsePagination(c)

	page, err := h.dashboardService.GetChannelVideos(currentUserID, params)
	if err != nil {
		logger.Error("Get channel videos failed", zap.Error(err))
		response.InternalError(c, "获取频道视频失败")
		return
	}

	respondPage(c, page, "获取频道视频成功", "频道暂无视频")
}
