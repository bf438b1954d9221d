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

type LikeHandler struct {
	likeService *service.LikeService
}

func NewLikeHandler(likeService *service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// ToggleVideoLike POST /api/v1/video/:videoId/like
func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId")
	if !ok {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	data, err := h.likeService.ToggleVideoLike(currentUserID, videoID)
	if err != nil {
		handleLikeError(c, err)
		return
	}

	response.OK(c, "点赞状态已切换", data)
}

// ToggleCommentLike POST /api/v1/comment/:commentId/like
func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		response.BadRequest(c, "无效的评论ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	data, err := h.likeService.ToggleCommentLike(currentUserID, commentID)
	if err != nil {
		handleLikeError(c, err)
		return
	}

	response.OK(c, "点赞状态已切换", data)
}

// ToggleTweetLike POST /api/v1/tweet/:tweetId/like
func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	tweetID, ok := parseIDParam(c, "tweetId")
	if !ok {
		response.BadRequest(c, "无效的动态ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	data, err := h.likeService.ToggleTweetLike(currentUserID, tweetID)
	if err != nil {
		handleLikeError(c, err)
		return
	}

	response.OK(c, "点赞状态已切换", data)
}

// GetLikedVideos GET /api/v1/like/videos
func (h *LikeHandler) GetLikedVideos(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)
	params := parsePagination(c)

	page, err := h.likeService.GetLikedVideos(currentUserID, params)
	if err != nil {
		handleLikeError(c, err)
		return
	}

	respondPage(c, page, "获取点赞视频成功", "暂无点赞的视频")
}

func handleLikeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrCommentNotFound),
		errors.Is(err, service.ErrTweetNotFound):
		response.NotFound(c, err.Error())
	default:
		logger.Error("Like operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
