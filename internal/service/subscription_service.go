package service

import (
	"errors"

	"tubehub/internal/api/dto"
	"tubehub/internal/repository"
	"tubehub/pkg/pagination"

	"gorm.io/gorm"
)

var ErrSelfSubscribe = errors.New("不能订阅自己的频道")

type SubscriptionService struct {
	subscriptionRepo *repository.SubscriptionRepository
	userRepo         *repository.UserRepository
}

func NewSubscriptionService(
	subscriptionRepo *repository.SubscriptionRepository,
	userRepo *repository.UserRepository,
) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		userRepo:         userRepo,
	}
}

// Toggle 切换对某频道的订阅。禁止订阅自己；与点赞同构，
// 唯一索引保证并发切换不会产生重复订阅
func (s *SubscriptionService) Toggle(subscriberID, channelID int64) (*dto.SubscriptionToggleData, error) {
	if subscriberID == channelID {
		return nil, ErrSelfSubscribe
	}

	if _, err := s.userRepo.GetByID(channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	inserted, err := s.subscriptionRepo.TryInsert(subscriberID, channelID)
	if err != nil {
		return nil, err
	}

	subscribed := inserted
	if !inserted {
		if _, err := s.subscriptionRepo.Delete(subscriberID, channelID); err != nil {
			return nil, err
		}
		subscribed = false
	}

	count, err := s.subscriptionRepo.CountSubscribers(channelID)
	if err != nil {
		return nil, err
	}

	return &dto.SubscriptionToggleData{Subscribed: subscribed, SubscriberCount: count}, nil
}

// GetSubscribers 某频道的订阅者分页
func (s *SubscriptionService) GetSubscribers(channelID int64, params pagination.Params) (*pagination.Page, error) {
	if _, err := s.userRepo.GetByID(channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	params = params.Normalize()
	users, total, err := s.subscriptionRepo.ListSubscribers(channelID, params.Offset(), params.Limit)
	if err != nil {
		return nil, err
	}

	return pagination.NewPage(toOwnerBriefs(users), total, params), nil
}

// GetSubscribedChannels 当前用户订阅的频道分页
func (s *SubscriptionService) GetSubscribedChannels(subscriberID int64, params pagination.Params) (*pagination.Page, error) {
	params = params.Normalize()
	users, total, err := s.subscriptionRepo.ListSubscribedChannels(subscriberID, params.Offset(), params.Limit)
	if err != nil {
		return nil, err
	}

	return pagination.NewPage(toOwnerBriefs(users), total, params), nil
}
