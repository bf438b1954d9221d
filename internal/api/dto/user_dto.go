package dto

import "time"

// UserInfo 用户详情（不含任何凭据字段）
type UserInfo struct {
	ID         int64     `json:"id"`
	UserName   string    `json:"user_name"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Avatar     string    `json:"avatar"`
	CoverImage string    `json:"cover_image"`
	CreatedAt  time.Time `json:"created_at"`
}

// OwnerBrief 列表中内联的作者简要信息（仅展示字段）
type OwnerBrief struct {
	ID       int64  `json:"id"`
	UserName string `json:"user_name"`
	FullName string `json:"full_name"`
	Avatar   string `json:"avatar"`
}

// ChannelProfile 频道主页：用户信息 + 订阅统计 + 当前用户是否已订阅
type ChannelProfile struct {
	UserInfo
	SubscriberCount   int64 `json:"subscriber_count"`
	SubscribedToCount int64 `json:"subscribed_to_count"`
	IsSubscribed      bool  `json:"is_subscribed"`
}

// UpdateAccountRequest 更新账号资料请求
type UpdateAccountRequest struct {
	FullName string `json:"full_name" binding:"required,min=1,max=255"`
	Email    string `json:"email" binding:"required,email"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6,max=72"`
}

// WatchHistoryItem 观看历史条目
type WatchHistoryItem struct {
	Video     VideoInfo `json:"video"`
	WatchedAt time.Time `json:"watched_at"`
}
