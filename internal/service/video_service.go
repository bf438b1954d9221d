package service

import (
	"context"
	"errors"
	"fmt"

	"tubehub/internal/api/dto"
	"tubehub/internal/model"
	"tubehub/internal/repository"
	"tubehub/pkg/pagination"

	"gorm.io/gorm"
)

var (
	ErrVideoNotFound  = errors.New("视频不存在")
	ErrNotVideoOwner  = errors.New("没有操作该视频的权限")
	ErrNothingToApply = errors.New("没有任何待更新的字段")
)

type VideoService struct {
	videoRepo        *repository.VideoRepository
	commentRepo      *repository.CommentRepository
	likeRepo         *repository.LikeRepository
	playlistRepo     *repository.PlaylistRepository
	watchHistoryRepo *repository.WatchHistoryRepository
	searchService    *SearchService
}

func NewVideoService(
	videoRepo *repository.VideoRepository,
	commentRepo *repository.CommentRepository,
	likeRepo *repository.LikeRepository,
	playlistRepo *repository.PlaylistRepository,
	watchHistoryRepo *repository.WatchHistoryRepository,
	searchService *SearchService,
) *VideoService {
	return &VideoService{
		videoRepo:        videoRepo,
		commentRepo:      commentRepo,
		likeRepo:         likeRepo,
		playlistRepo:     playlistRepo,
		watchHistoryRepo: watchHistoryRepo,
		searchService:    searchService,
	}
}

// List 视频列表。未指定 user_id 或查询者不是该作者时只返回已发布视频
func (s *VideoService) List(query *dto.VideoListQuery, viewerID int64) (*pagination.Page, error) {
	params := pagination.Params{Page: query.Page, Limit: query.Limit}.Normalize()

	filter := repository.ListFilter{
		PublishedOnly: true,
		SortBy:        query.SortBy,
		SortDesc:      query.SortType != "asc",
	}
	if query.UserID > 0 {
		filter.OwnerID = &query.UserID
		// 作者本人能看到自己的未发布视频
		if viewerID == query.UserID {
			filter.PublishedOnly = false
		}
	}
	if query.Query != "" {
		filter.Search = &query.Query
	}

	videos, total, err := s.videoRepo.List(params.Offset(), params.Limit, filter)
	if err != nil {
		return nil, err
	}

	docs := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		docs = append(docs, *toVideoInfo(&videos[i]))
	}

	return pagination.NewPage(docs, total, params), nil
}

// Publish 发布视频：先传视频文件再传封面，任何一步失败都
// 补偿删除已传对象，保证不会留下没有记录的媒体
func (s *VideoService) Publish(ctx context.Context, ownerID int64, req *dto.VideoPublishRequest, videoFile, thumbnail *MediaFile, duration int) (*dto.VideoInfo, error) {
	videoURL, err := uploadMedia("videos", videoFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMediaUploadFailed, err)
	}

	thumbnailURL, err := uploadMedia("thumbnails", thumbnail)
	if err != nil {
		cleanupMedia("publish-thumbnail-failed", videoURL)
		return nil, fmt.Errorf("%w: %v", ErrMediaUploadFailed, err)
	}

	video := &model.Video{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		VideoFile:   videoURL,
		Thumbnail:   thumbnailURL,
		Duration:    duration,
		IsPublished: true,
	}

	if err := s.videoRepo.Create(video); err != nil {
		cleanupMedia("publish-store-failed", videoURL, thumbnailURL)
		return nil, err
	}

	if full, err := s.videoRepo.GetByIDWithOwner(video.ID); err == nil {
		video = full
		s.searchService.SyncVideo(ctx, video)
	}

	return toVideoInfo(video), nil
}

// GetByID 视频详情。已发布视频对所有人可见，未发布的仅作者本人；
// 登录用户每次获取都计一次播放并落一条观看历史
func (s *VideoService) GetByID(videoID, viewerID int64) (*dto.VideoInfo, error) {
	video, err := s.videoRepo.GetByIDWithOwner(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	if !video.IsPublished && video.OwnerID != viewerID {
		return nil, ErrVideoNotFound
	}

	if err := s.videoRepo.IncrementViews(videoID); err != nil {
		return nil, err
	}
	video.Views++

	if viewerID > 0 {
		if err := s.watchHistoryRepo.Record(viewerID, videoID); err != nil {
			return nil, err
		}
	}

	return toVideoInfo(video), nil
}

// Update 更新标题/描述/封面（仅作者本人），换封面时回收旧对象
func (s *VideoService) Update(ctx context.Context, videoID, ownerID int64, req *dto.VideoUpdateRequest, thumbnail *MediaFile) (*dto.VideoInfo, error) {
	video, err := s.getOwned(videoID, ownerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	oldThumbnail := ""
	if thumbnail != nil {
		thumbnailURL, err := uploadMedia("thumbnails", thumbnail)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMediaUploadFailed, err)
		}
		updates["thumbnail"] = thumbnailURL
		oldThumbnail = video.Thumbnail
	}

	if len(updates) == 0 {
		return nil, ErrNothingToApply
	}

	updated, err := s.videoRepo.Update(videoID, updates)
	if err != nil {
		if url, ok := updates["thumbnail"].(string); ok {
			cleanupMedia("video-update-store-failed", url)
		}
		return nil, err
	}

	if oldThumbnail != "" {
		cleanupMedia("replaced-thumbnail", oldThumbnail)
	}

	if full, err := s.videoRepo.GetByIDWithOwner(videoID); err == nil {
		updated = full
		s.searchService.SyncVideo(ctx, updated)
	}

	return toVideoInfo(updated), nil
}

// Delete 删除视频（仅作者本人）：级联清理评论、点赞、播放列表条目、
// 观看历史，回收媒体对象，并从搜索索引移除
func (s *VideoService) Delete(ctx context.Context, videoID, ownerID int64) error {
	video, err := s.getOwned(videoID, ownerID)
	if err != nil {
		return err
	}

	if err := s.commentRepo.DeleteByVideo(videoID); err != nil {
		return err
	}
	if err := s.likeRepo.DeleteByTarget(model.LikeTargetVideo, videoID); err != nil {
		return err
	}
	if err := s.playlistRepo.RemoveVideoEverywhere(videoID); err != nil {
		return err
	}
	if err := s.watchHistoryRepo.DeleteByVideo(videoID); err != nil {
		return err
	}

	if err := s.videoRepo.Delete(videoID); err != nil {
		return err
	}

	cleanupMedia("video-deleted", video.VideoFile, video.Thumbnail)
	s.searchService.RemoveVideo(ctx, videoID)

	return nil
}

// TogglePublish 切换发布状态（仅作者本人），返回切换后的详情
func (s *VideoService) TogglePublish(ctx context.Context, videoID, ownerID int64) (*dto.VideoInfo, error) {
	video, err := s.getOwned(videoID, ownerID)
	if err != nil {
		return nil, err
	}

	updated, err := s.videoRepo.Update(videoID, map[string]interface{}{
		"is_published": !video.IsPublished,
	})
	if err != nil {
		return nil, err
	}

	if full, err := s.videoRepo.GetByIDWithOwner(videoID); err == nil {
		updated = full
		s.searchService.SyncVideo(ctx, updated)
	}

	return toVideoInfo(updated), nil
}

// getOwned 加载视频并校验归属：视频不存在与无权限分开报错
func (s *VideoService) getOwned(videoID, ownerID int64) (*model.Video, error) {
	video, err := s.videoRepo.GetByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	if video.OwnerID != ownerID {
		return nil, ErrNotVideoOwner
	}
	return video, nil
}

func toVideoInfo(video *model.Video) *dto.VideoInfo {
	return &dto.VideoInfo{
		ID:          video.ID,
		OwnerID:     video.OwnerID,
		Title:       video.Title,
		Description: video.Description,
		VideoFile:   video.VideoFile,
		Thumbnail:   video.Thumbnail,
		Duration:    video.Duration,
		Views:       video.Views,
		IsPublished: video.IsPublished,
		CreatedAt:   video.CreatedAt,
		UpdatedAt:   video.UpdatedAt,
		Owner:       toOwnerBrief(&video.Owner),
	}
}
