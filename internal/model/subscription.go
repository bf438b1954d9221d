package model

import "time"

// Subscription 订阅关系模型，(subscriber_id, channel_id) 唯一
type Subscription struct {
	ID           int64     `gorm:"primaryKey;autoIncrement;comment:订阅关系ID" json:"id"`
	SubscriberID int64     `gorm:"not null;uniqueIndex:uq_subscriber_channel;index:idx_subscriber_id;comment:订阅者用户ID" json:"subscriber_id"`
	ChannelID    int64     `gorm:"not null;uniqueIndex:uq_subscriber_channel;index:idx_channel_id;comment:被订阅频道用户ID" json:"channel_id"`
	CreatedAt    time.Time `gorm:"autoCreateTime;comment:订阅时间" json:"created_at"`

	// 关联关系
	Subscriber User `gorm:"foreignKey:SubscriberID" json:"subscriber,omitempty"`
	Channel    User `gorm:"foreignKey:ChannelID" json:"channel,omitempty"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
