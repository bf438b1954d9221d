package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tubehub/internal/api/dto"
	infraRedis "tubehub/internal/infra/redis"
	"tubehub/internal/repository"
	"tubehub/pkg/logger"
	"tubehub/pkg/pagination"

	"go.uber.org/zap"
)

// 频道统计缓存 TTL。统计是聚合扫描，允许短暂滞后换掉每次全表汇总
const channelStatsCacheTTL = 60 * time.Second

type DashboardService struct {
	videoRepo        *repository.VideoRepository
	subscriptionRepo *repository.SubscriptionRepository
}

func NewDashboardService(
	videoRepo *repository.VideoRepository,
	subscriptionRepo *repository.SubscriptionRepository,
) *DashboardService {
	return &DashboardService{
		videoRepo:        videoRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// GetChannelStats 当前用户频道统计：视频侧汇总（播放量、视频数、获赞数）
// 加独立计算的订阅者数。结果短期缓存在 Redis
func (s *DashboardService) GetChannelStats(ctx context.Context, channelID int64) (*dto.ChannelStatsData, error) {
	cacheKey := channelStatsKey(channelID)

	if cached := s.loadCachedStats(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	videoStats, err := s.videoRepo.GetChannelStats(channelID)
	if err != nil {
		return nil, err
	}

	subscriberCount, err := s.subscriptionRepo.CountSubscribers(channelID)
	if err != nil {
		return nil, err
	}

	stats := &dto.ChannelStatsData{
		TotalViews:       videoStats.TotalViews,
		TotalVideos:      videoStats.TotalVideos,
		TotalLikes:       videoStats.TotalLikes,
		TotalSubscribers: subscriberCount,
	}

	s.cacheStats(ctx, cacheKey, stats)

	return stats, nil
}

// GetChannelVideos 当前用户频道的视频分页（含未发布，按创建时间倒序）
func (s *DashboardService) GetChannelVideos(channelID int64, params pagination.Params) (*pagination.Page, error) {
	params = params.Normalize()

	videos, total, err := s.videoRepo.List(params.Offset(), params.Limit, repository.ListFilter{
		OwnerID:  &channelID,
		SortBy:   "created_at",
		SortDesc: true,
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

func (s *DashboardService) loadCachedStats(ctx context.Context, key string) *dto.ChannelStatsData {
	client := infraRedis.Get()
	if client == nil {
		return nil
	}

	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}

	var stats dto.ChannelStatsData
	if err := json.Unmarshal(data, &stats); err != nil {
		logger.Warn("Corrupt channel stats cache entry", zap.String("key", key), zap.Error(err))
		return nil
	}
	return &stats
}

func (s *DashboardService) cacheStats(ctx context.Context, key string, stats *dto.ChannelStatsData) {
	client := infraRedis.Get()
	if client == nil {
		return
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return
	}

	if err := client.Set(ctx, key, data, channelStatsCacheTTL).Err(); err != nil {
		logger.Warn("Failed to cache channel stats", zap.String("key", key), zap.Error(err))
	}
}

func channelStatsKey(channelID int64) string {
	return fmt.Sprintf("dashboard:stats:%d", channelID)
}
