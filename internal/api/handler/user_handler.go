package handler

import (
	"errors"

	"tubehub/internal/api/middleware"
	"tubehub/internal/api/response"
	"tubehub/internal/service"
	"tubehub/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetChannelProfile GET /api/v1/user/c/:userName
func (h *UserHandler) GetChannelProfile(c *gin.Context) {
	userName := c.Param("userName")
	if userName == "" {
		response.BadRequest(c, "无效的用户名")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	profile, err := h.userService.GetChannelProfile(userName, currentUserID)
	if err != nil {
		handleUserError(c, err)
		return
	}

	response.OK(c, "获取频道信息成功", profile)
}

// GetWatchHistory GET /api/v1/user/history
func (h *UserHandler) GetWatchHistory(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)
	params := parsePagination(c)

	page, err := h.userService.GetWatchHistory(currentUserID, params)
	if err != nil {
		handleUserError(c, err)
		return
	}

	respondPage(c, page, "获取观看历史成功", "暂无观看历史")
}

func handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("User operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
