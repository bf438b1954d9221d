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

type SubscriptionHandler struct {
	subscriptionService *service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// Toggle POST /api/v1/subscription/c/:channelId
func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	channelID, ok := parseIDParam(c, "channelId")
	if !ok {
		response.BadRequest(c, "无效的频道ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	data, err := h.subscriptionService.Toggle(currentUserID, channelID)
	if err != nil {
		handleSubscriptionError(c, err)
		return
	}

	response.OK(c, "订阅状态已切换", data)
}

// GetSubscribers GET /api/v1/subscription/c/:channelId
func (h *SubscriptionHandler) GetSubscribers(c *gin.Context) {
	channelID, ok := parseIDParam(c, "channelId")
	if !ok {
		response.BadRequest(c, "无效的频道ID")
		return
	}

	params := parsePagination(c)

	page, err := h.subscriptionService.GetSubscribers(channelID, params)
	if err != nil {
		handleSubscriptionError(c, err)
		return
	}

	respondPage(c, page, "获取订阅者列表成功", "该频道暂无订阅者")
}

// GetSubscribedChannels GET /api/v1/subscription/u
func (h *SubscriptionHandler) GetSubscribedChannels(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)
	params := parsePagination(c)

	page, err := h.subscriptionService.GetSubscribedChannels(currentUserID, params)
	if err != nil {
		handleSubscriptionError(c, err)
		return
	}

	respondPage(c, page, "获取订阅频道成功", "暂未订阅任何频道")
}

func handleSubscriptionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSelfSubscribe):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Subscription operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
