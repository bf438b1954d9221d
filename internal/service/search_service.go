package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"tubehub/internal/api/dto"
	infraES "tubehub/internal/infra/elasticsearch"
	"tubehub/internal/model"
	"tubehub/internal/repository"
	"tubehub/pkg/logger"
	"tubehub/pkg/pagination"

	"go.uber.org/zap"
)

// videoDoc videos 索引中的文档结构
type videoDoc struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	Duration    int       `json:"duration"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
}

type SearchService struct {
	videoRepo *repository.VideoRepository
}

func NewSearchService(videoRepo *repository.VideoRepository) *SearchService {
	return &SearchService{videoRepo: videoRepo}
}

// SearchVideos 全文搜索视频。ES 不可用或查询失败时降级为数据库
// 子串匹配，保证搜索入口始终可用
func (s *SearchService) SearchVideos(ctx context.Context, req *dto.SearchVideoRequest) (*pagination.Page, error) {
	params := pagination.Params{Page: req.Page, Limit: req.Limit}.Normalize()

	if infraES.Available() {
		page, err := s.searchES(ctx, req.Q, params)
		if err == nil {
			return page, nil
		}
		logger.Warn("Elasticsearch search failed, falling back to database",
			zap.String("query", req.Q), zap.Error(err))
	}

	return s.searchDatabase(req.Q, params)
}

func (s *SearchService) searchES(ctx context.Context, query string, params pagination.Params) (*pagination.Page, error) {
	body := map[string]interface{}{
		"from": params.Offset(),
		"size": params.Limit,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"title^3", "description", "owner_name"},
			},
		},
		"sort": []interface{}{
			"_score",
			map[string]interface{}{"created_at": "desc"},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}

	resp, err := infraES.Search(ctx, infraES.VideosIndexName(), &buf)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("search videos: %s", resp.String())
	}

	var result struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source videoDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	docs := make([]dto.VideoInfo, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		d := hit.Source
		docs = append(docs, dto.VideoInfo{
			ID:          d.ID,
			OwnerID:     d.OwnerID,
			Title:       d.Title,
			Description: d.Description,
			Thumbnail:   d.Thumbnail,
			Duration:    d.Duration,
			Views:       d.Views,
			IsPublished: true,
			CreatedAt:   d.CreatedAt,
			Owner: &dto.OwnerBrief{
				ID:       d.OwnerID,
				UserName: d.OwnerName,
			},
		})
	}

	return pagination.NewPage(docs, result.Hits.Total.Value, params), nil
}

func (s *SearchService) searchDatabase(query string, params pagination.Params) (*pagination.Page, error) {
	videos, total, err := s.videoRepo.List(params.Offset(), params.Limit, repository.ListFilter{
		PublishedOnly: true,
		Search:        &query,
		SortBy:        "created_at",
		SortDesc:      true,
	})
	if err != nil {
		return nil, err
	}

	docs := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		docs = append(docs, *toVideoInfo(&videos[i]))
	}

	return pagination.NewPage(docs, total, params), nil
}

// SyncVideo 把已发布视频同步进索引。索引只放已发布的：
// 下架与删除都走 RemoveVideo
func (s *SearchService) SyncVideo(ctx context.Context, video *model.Video) {
	if !infraES.Available() {
		return
	}
	if !video.IsPublished {
		s.RemoveVideo(ctx, video.ID)
		return
	}

	doc := videoDoc{
		ID:          video.ID,
		OwnerID:     video.OwnerID,
		OwnerName:   video.Owner.UserName,
		Title:       video.Title,
		Description: video.Description,
		Thumbnail:   video.Thumbnail,
		Duration:    video.Duration,
		Views:       video.Views,
		CreatedAt:   video.CreatedAt,
	}

	data, err := json.Marshal(doc)
	if err != nil {
		logger.Error("Failed to marshal video document", zap.Int64("video_id", video.ID), zap.Error(err))
		return
	}

	resp, err := infraES.Index(ctx, infraES.VideosIndexName(),
		strconv.FormatInt(video.ID, 10), bytes.NewReader(data))
	if err != nil {
		logger.Warn("Failed to index video", zap.Int64("video_id", video.ID), zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.IsError() {
		logger.Warn("Index video returned error",
			zap.Int64("video_id", video.ID), zap.String("response", resp.String()))
	}
}

// RemoveVideo 从索引中移除视频（404 视为已移除）
func (s *SearchService) RemoveVideo(ctx context.Context, videoID int64) {
	if !infraES.Available() {
		return
	}

	resp, err := infraES.Delete(ctx, infraES.VideosIndexName(), strconv.FormatInt(videoID, 10))
	if err != nil {
		logger.Warn("Failed to remove video from index", zap.Int64("video_id", videoID), zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.IsError() && resp.StatusCode != 404 {
		logger.Warn("Remove video from index returned error",
			zap.Int64("video_id", videoID), zap.String("response", resp.String()))
	}
}
