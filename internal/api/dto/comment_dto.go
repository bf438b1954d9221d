package dto

import "time"

// CommentCreateRequest 发表评论请求
type CommentCreateRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}

// CommentUpdateRequest 修改评论请求
type CommentUpdateRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}

// CommentInfo 评论详情
type CommentInfo struct {
	ID        int64       `json:"id"`
	VideoID   int64       `json:"video_id"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Owner     *OwnerBrief `json:"owner,omitempty"`
}
