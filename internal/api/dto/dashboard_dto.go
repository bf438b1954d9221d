package dto

// ChannelStatsData 频道统计汇总：视频侧汇总 + 独立计算的订阅者数
type ChannelStatsData struct {
	TotalViews       int64 `json:"total_views"`
	TotalVideos      int64 `json:"total_videos"`
	TotalLikes       int64 `json:"total_likes"`
	TotalSubscribers int64 `json:"total_subscribers"`
}
