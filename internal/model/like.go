package model

import "time"

// Like 的目标类型（标签化的三选一外键）
const (
	LikeTargetVideo   = "video"
	LikeTargetComment = "comment"
	LikeTargetTweet   = "tweet"
)

// Like 点赞模型，(user_id, target_type, target_id) 唯一，
// 切换点赞依赖该唯一索引做原子插入
type Like struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;comment:点赞记录ID" json:"id"`
	UserID     int64     `gorm:"not null;uniqueIndex:uq_user_target_like;index:idx_likes_user_id;comment:点赞用户ID" json:"user_id"`
	TargetType string    `gorm:"size:20;not null;uniqueIndex:uq_user_target_like;comment:目标类型 video/comment/tweet" json:"target_type"`
	TargetID   int64     `gorm:"not null;uniqueIndex:uq_user_target_like;index:idx_likes_target_id;comment:目标ID" json:"target_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime;comment:点赞时间" json:"created_at"`

	// 关联关系
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Like) TableName() string {
	return "likes"
}
