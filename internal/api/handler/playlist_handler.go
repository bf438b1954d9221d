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

type PlaylistHandler struct {
	playlistService *service.PlaylistService
}

func NewPlaylistHandler(playlistService *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{playlistService: playlistService}
}

// Create POST /api/v1/playlist
func (h *PlaylistHandler) Create(c *gin.Context) {
	var req dto.PlaylistCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.playlistService.Create(currentUserID, &req)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.Created(c, "播放列表创建成功", info)
}

// GetByID GET /api/v1/playlist/:playlistId
func (h *PlaylistHandler) GetByID(c *gin.Context) {
	playlistID, ok := parseIDParam(c, "playlistId")
	if !ok {
		response.BadRequest(c, "无效的播放列表ID")
		return
	}

	info, err := h.playlistService.GetByID(playlistID)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "获取播放列表成功", info)
}

// ListByUser GET /api/v1/playlist/user/:userId
func (h *PlaylistHandler) ListByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	infos, err := h.playlistService.ListByUser(userID)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "获取用户播放列表成功", infos)
}

// Update PATCH /api/v1/playlist/:playlistId
func (h *PlaylistHandler) Update(c *gin.Context) {
	playlistID, ok := parseIDParam(c, "playlistId")
	if !ok {
		response.BadRequest(c, "无效的播放列表ID")
		return
	}

	var req dto.PlaylistUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.playlistService.Update(playlistID, currentUserID, &req)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "播放列表更新成功", info)
}

// Delete DELETE /api/v1/playlist/:playlistId
func (h *PlaylistHandler) Delete(c *gin.Context) {
	playlistID, ok := parseIDParam(c, "playlistId")
	if !ok {
		response.BadRequest(c, "无效的播放列表ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.playlistService.Delete(playlistID, currentUserID); err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "播放列表删除成功", nil)
}

// AddVideo PATCH /api/v1/playlist/add/:videoId/:playlistId
func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId")
	if !ok {
		response.BadRequest(c, "无效的视频ID")
		return
	}
	playlistID, ok := parseIDParam(c, "playlistId")
	if !ok {
		response.BadRequest(c, "无效的播放列表ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.playlistService.AddVideo(playlistID, videoID, currentUserID)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "视频已加入播放列表", info)
}

// RemoveVideo PATCH /api/v1/playlist/remove/:videoId/:playlistId
func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	videoID, ok := parseIDParam(c, "videoId")
	if !ok {
		response.BadRequest(c, "无效的视频ID")
		return
	}
	playlistID, ok := parseIDParam(c, "playlistId")
	if !ok {
		response.BadRequest(c, "无效的播放列表ID")
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.playlistService.RemoveVideo(playlistID, videoID, currentUserID)
	if err != nil {
		handlePlaylistError(c, err)
		return
	}

	response.OK(c, "视频已移出播放列表", info)
}

func handlePlaylistError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPlaylistNotFound),
		errors.Is(err, service.ErrVideoNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrVideoNotInList):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrNotPlaylistOwner):
		response.Forbidden(c, err.Error())
	default:
		logger.Error("Playlist operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
