package model

import "time"

// User 用户模型
type User struct {
	ID           int64   `gorm:"primaryKey;autoIncrement;comment:用户标识" json:"id"`
	UserName     string  `gorm:"size:255;not null;uniqueIndex;comment:用户名（小写）" json:"user_name"`
	Email        string  `gorm:"size:255;not null;uniqueIndex;comment:邮箱（小写）" json:"email"`
	FullName     string  `gorm:"size:255;not null;comment:显示名称" json:"full_name"`
	Password     string  `gorm:"size:255;not null;comment:密码哈希" json:"-"` // json:"-" 序列化时忽略密码
	Avatar       string  `gorm:"size:500;not null;comment:头像地址" json:"avatar"`
	CoverImage   string  `gorm:"size:500;comment:封面图地址" json:"cover_image"`
	RefreshToken *string `gorm:"size:1000;comment:当前有效的刷新令牌（单槽）" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime;comment:注册时间" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	Videos []Video `gorm:"foreignKey:OwnerID" json:"videos,omitempty"`
	Tweets []Tweet `gorm:"foreignKey:OwnerID" json:"tweets,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// WatchHistory 观看历史，同一 (用户, 视频) 只保留一条，重复观看刷新时间
type WatchHistory struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:uq_watch_user_video;index:idx_watch_user_id" json:"user_id"`
	VideoID   int64     `gorm:"not null;uniqueIndex:uq_watch_user_video" json:"video_id"`
	WatchedAt time.Time `gorm:"not null;index:idx_watch_watched_at;comment:最近观看时间" json:"watched_at"`

	Video Video `gorm:"foreignKey:VideoID" json:"video,omitempty"`
}

func (WatchHistory) TableName() string {
	return "watch_histories"
}
