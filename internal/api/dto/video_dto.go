package dto

import "time"

// VideoPublishRequest 视频发布请求（multipart/form-data）
type VideoPublishRequest struct {
	Title       string `form:"title" binding:"required,min=1,max=200"`
	Description string `form:"description" binding:"required"`
}

// VideoUpdateRequest 视频更新请求，缩略图文件单独读取
type VideoUpdateRequest struct {
	Title       *string `form:"title" binding:"omitempty,min=1,max=200"`
	Description *string `form:"description"`
}

// VideoListQuery 视频列表查询参数
type VideoListQuery struct {
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
	Query    string `form:"query"`
	SortBy   string `form:"sort_by,default=created_at"`
	SortType string `form:"sort_type,default=desc" binding:"omitempty,oneof=asc desc"`
	UserID   int64  `form:"user_id"`
}

// VideoInfo 视频详情
type VideoInfo struct {
	ID          int64       `json:"id"`
	OwnerID     int64       `json:"owner_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	VideoFile   string      `json:"video_file"`
	Thumbnail   string      `json:"thumbnail"`
	Duration    int         `json:"duration"`
	Views       int64       `json:"views"`
	IsPublished bool        `json:"is_published"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Owner       *OwnerBrief `json:"owner,omitempty"`
}
