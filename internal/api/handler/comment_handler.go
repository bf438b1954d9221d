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

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create POST /api/v1/comment/:videoId
func (h *CommentHandler) Create(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId")
	if !ok {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	var req dto.CommentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.commentService.Create(videoID, currentUserID, &req)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.Created(c, "评论发表成功", info)
}

// ListByVideo GET /api/v1/comment/:videoId
func (h *CommentHandler) ListByVideo(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId")
	if !ok {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	params := parsePagination(c)

	page, err := h.commentService.ListByVideo(videoID, params)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	respondPage(c, page, "获取评论列表成功", "该视频暂无评论")
}

// Update PATCH /api/v1/comment/c/:commentId
func (h *CommentHandler) Update(c *gin.Context) {
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		response.BadRequest(c, "无效的评论ID")
		return
	}

	var req dto.CommentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.commentService.Update(commentID, currentUserID, &req)
	if err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "评论更新成功", info)
}

// Delete DELETE /api/v1/comment/c/:commentId
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		response.BadRequest(c, "无效的评论ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.commentService.Delete(commentID, currentUserID); err != nil {
		handleCommentError(c, err)
		return
	}

	response.OK(c, "评论删除成功", nil)
}

func handleCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrCommentNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrNotCommentOwner):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("Comment operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
