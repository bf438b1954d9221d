package handler

import (
	"errors"

	"tubehub/internal/api/dto"
	"tubehub/internal/api/middleware"
	"tubehub/internal/api/response"
	"tubehub/internal/service"
	"tubehub/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TweetHandler struct {
	tweetService *service.TweetService
}

func NewTweetHandler(tweetService *service.TweetService) *TweetHandler {
	return &TweetHandler{tweetService: tweetService}
}

// Create POST /api/v1/tweet
func (h *TweetHandler) Create(c *gin.Context) {
	var req dto.TweetCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.tweetService.Create(currentUserID, &req)
	if err != nil {
		handleTweetError(c, err)
		return
	}

	response.Created(c, "动态发布成功", info)
}

// ListByUser GET /api/v1/tweet/user/:userId
func (h *TweetHandler) ListByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	params := parsePagination(c)

	page, err := h.tweetService.ListByUser(userID, params)
	if err != nil {
		handleTweetError(c, err)
		return
	}

	respondPage(c, page, "获取动态列表成功", "该用户暂无动态")
}

// Update PATCH /api/v1/tweet/:tweetId
func (h *TweetHandler) Update(c *gin.Context) {
	tweetID, ok := parseIDParam(c, "tweetId")
	if !ok {
		response.BadRequest(c, "无效的动态ID")
		return
	}

	var req dto.TweetUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.tweetService.Update(tweetID, currentUserID, &req)
	if err != nil {
		handleTweetError(c, err)
		return
	}

	response.OK(c, "动态更新成功", info)
}

// Delete DELETE /api/v1/tweet/:tweetId
func (h *TweetHandler) Delete(c *gin.Context) {
	tweetID, ok := parseIDParam(c, "tweetId")
	if !ok {
		response.BadRequest(c, "无效的动态ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.tweetService.Delete(tweetID, currentUserID); err != nil {
		handleTweetError(c, err)
		return
	}

	response.OK(c, "动态删除成功", nil)
}

func handleTweetError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTweetNotFound),
		errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrNotTweetOwner):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("Tweet operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
