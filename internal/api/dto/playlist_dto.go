package dto

import "time"

// PlaylistCreateRequest 创建播放列表请求
type PlaylistCreateRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"required"`
}

// PlaylistUpdateRequest 更新播放列表请求
type PlaylistUpdateRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"required"`
}

// PlaylistEntry 播放列表条目（同一视频可出现多次）
type PlaylistEntry struct {
	Position int       `json:"position"`
	Video    VideoInfo `json:"video"`
}

// PlaylistInfo 播放列表详情
type PlaylistInfo struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Owner       *OwnerBrief     `json:"owner,omitempty"`
	Videos      []PlaylistEntry `json:"videos"`
}
