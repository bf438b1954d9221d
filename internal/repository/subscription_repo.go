package repository

import (
	"tubehub/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// TryInsert 原子创建订阅边，(subscriber_id, channel_id) 唯一索引上
// ON CONFLICT DO NOTHING。返回是否实际插入
func (r *SubscriptionRepository) TryInsert(subscriberID, channelID int64) (bool, error) {
	sub := &model.Subscription{
		SubscriberID: subscriberID,
		ChannelID:    channelID,
	}
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(sub)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete 删除订阅边，返回是否实际删除
func (r *SubscriptionRepository) Delete(subscriberID, channelID int64) (bool, error) {
	result := r.db.
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Delete(&model.Subscription{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Exists 是否已订阅
func (r *SubscriptionRepository) Exists(subscriberID, channelID int64) (bool, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		Count(&count).Error
	return count > 0, err
}

// CountSubscribers 频道的订阅者数量（独立于视频汇总单独计算）
func (r *SubscriptionRepository) CountSubscribers(channelID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).
		Where("channel_id = ?", channelID).Count(&count).Error
	return count, err
}

// CountSubscribedTo 用户订阅的频道数量
func (r *SubscriptionRepository) CountSubscribedTo(subscriberID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Subscription{}).
		Where("subscriber_id = ?", subscriberID).Count(&count).Error
	return count, err
}

// ListSubscribers 频道的订阅者用户列表
func (r *SubscriptionRepository) ListSubscribers(channelID int64, skip, limit int) ([]model.User, int64, error) {
	query := r.db.Model(&model.User{}).
		Joins("JOIN subscriptions ON subscriptions.subscriber_id = users.id").
		Where("subscriptions.channel_id = ?", channelID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := query.Order("subscriptions.created_at DESC").
		Offset(skip).Limit(limit).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// ListSubscribedChannels 用户订阅的频道用户列表
func (r *SubscriptionRepository) ListSubscribedChannels(subscriberID int64, skip, limit int) ([]model.User, int64, error) {
	query := r.db.Model(&model.User{}).
		Joins("JOIN subscriptions ON subscriptions.channel_id = users.id").
		Where("subscriptions.subscriber_id = ?", subscriberID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := query.Order("subscriptions.created_at DESC").
		Offset(skip).Limit(limit).Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
