package dto

import "time"

// TweetCreateRequest 发布动态请求
type TweetCreateRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}

// TweetUpdateRequest 修改动态请求
type TweetUpdateRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}

// TweetInfo 动态详情
type TweetInfo struct {
	ID        int64       `json:"id"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Owner     *OwnerBrief `json:"owner,omitempty"`
}
