package handler

import (
	"errors"
	"strconv"

	"tubehub/internal/api/dto"
	"tubehub/internal/api/middleware"
	"tubehub/internal/api/response"
	"tubehub/internal/service"
	"tubehub/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 视频文件与缩略图的大小上限
const (
	maxVideoSize     = 500 * 1024 * 1024
	maxThumbnailSize = 10 * 1024 * 1024
)

type VideoHandler struct {
	videoService *service.VideoService
}

func NewVideoHandler(videoService *service.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// List GET /api/v1/video（公开，登录作者可见自己的未发布视频）
func (h *VideoHandler) List(c *gin.Context) {
	var query dto.VideoListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	page, err := h.videoService.List(&query, currentUserID)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	respondPage(c, page, "获取视频列表成功", "没有匹配的视频")
}

// Publish POST /api/v1/video
func (h *VideoHandler) Publish(c *gin.Context) {
	var req dto.VideoPublishRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	videoHeader, err := c.FormFile("video_file")
	if err != nil {
		response.BadRequest(c, "请上传视频文件")
		return
	}
	if videoHeader.Size == 0 || videoHeader.Size > maxVideoSize {
		response.BadRequest(c, "视频文件大小无效（不能为空，最大 500MB）")
		return
	}

	thumbnailHeader, err := c.FormFile("thumbnail")
	if err != nil {
		response.BadRequest(c, "请上传视频封面")
		return
	}
	if thumbnailHeader.Size == 0 || thumbnailHeader.Size > maxThumbnailSize {
		response.BadRequest(c, "封面文件大小无效（不能为空，最大 10MB）")
		return
	}

	videoFile, closeVideo, err := openMediaFile(videoHeader)
	if err != nil {
		response.InternalError(c, "打开上传文件失败")
		return
	}
	defer closeVideo()

	thumbnail, closeThumbnail, err := openMediaFile(thumbnailHeader)
	if err != nil {
		response.InternalError(c, "打开上传文件失败")
		return
	}
	defer closeThumbnail()

	duration, _ := strconv.Atoi(c.PostForm("duration"))
	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.videoService.Publish(c.Request.Context(), currentUserID, &req, videoFile, thumbnail, duration)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.Created(c, "视频发布成功", info)
}

// GetByID GET /api/v1/video/:videoId（公开；登录用户记一次观看）
func (h *VideoHandler) GetByID(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId")
	if !ok {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.videoService.GetByID(videoID, currentUserID)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "获取视频详情成功", info)
}

// Update PATCH /api/v1/video/:videoId
func (h *VideoHandler) Update(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId")
	if !ok {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	var req dto.VideoUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	var thumbnail *service.MediaFile
	if thumbnailHeader, err := c.FormFile("thumbnail"); err == nil {
		var closeThumbnail func()
		thumbnail, closeThumbnail, err = openMediaFile(thumbnailHeader)
		if err != nil {
			response.InternalError(c, "打开上传文件失败")
			return
		}
		defer closeThumbnail()
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.videoService.Update(c.Request.Context(), videoID, currentUserID, &req, thumbnail)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "更新视频成功", info)
}

// Delete DELETE /api/v1/video/:videoId
func (h *VideoHandler) Delete(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId")
	if !ok {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.videoService.Delete(c.Request.Context(), videoID, currentUserID); err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "删除视频成功", nil)
}

// TogglePublish PATCH /api/v1/video/toggle/publish/:videoId
func (h *VideoHandler) TogglePublish(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId")
	if !ok {
		response.BadRequest(c, "无效的视频ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.videoService.TogglePublish(c.Request.Context(), videoID, currentUserID)
	if err != nil {
		handleVideoError(c, err)
		return
	}

	response.OK(c, "切换发布状态成功", info)
}

func handleVideoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVideoNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrNotVideoOwner):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrNothingToApply):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrMediaUploadFailed):
		response.InternalError(c, err.Error())
	default:
		logger.Error("Video operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
