package service

import (
	"errors"

	"tubehub/internal/api/dto"
	"tubehub/internal/repository"
	"tubehub/pkg/pagination"

	"gorm.io/gorm"
)

type UserService struct {
	userRepo         *repository.UserRepository
	subscriptionRepo *repository.SubscriptionRepository
	watchHistoryRepo *repository.WatchHistoryRepository
}

func NewUserService(
	userRepo *repository.UserRepository,
	subscriptionRepo *repository.SubscriptionRepository,
	watchHistoryRepo *repository.WatchHistoryRepository,
) *UserService {
	return &UserService{
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		watchHistoryRepo: watchHistoryRepo,
	}
}

// GetChannelProfile 频道主页：用户信息 + 订阅统计。
// viewerID 为 0 表示未登录访客，is_subscribed 恒为 false
func (s *UserService) GetChannelProfile(userName string, viewerID int64) (*dto.ChannelProfile, error) {
	user, err := s.userRepo.GetByUserName(userName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	subscriberCount, err := s.subscriptionRepo.CountSubscribers(user.ID)
	if err != nil {
		return nil, err
	}

	subscribedToCount, err := s.subscriptionRepo.CountSubscribedTo(user.ID)
	if err != nil {
		return nil, err
	}

	isSubscribed := false
	if viewerID > 0 {
		isSubscribed, err = s.subscriptionRepo.Exists(viewerID, user.ID)
		if err != nil {
			return nil, err
		}
	}

	return &dto.ChannelProfile{
		UserInfo:          *toUserInfo(user),
		SubscriberCount:   subscriberCount,
		SubscribedToCount: subscribedToCount,
		IsSubscribed:      isSubscribed,
	}, nil
}

// GetWatchHistory 观看历史分页，按最近观看倒序
func (s *UserService) GetWatchHistory(userID int64, params pagination.Params) (*pagination.Page, error) {
	params = params.Normalize()

	entries, total, err := s.watchHistoryRepo.List(userID, params.Offset(), params.Limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.WatchHistoryItem, 0, len(entries))
	for i := range entries {
		items = append(items, dto.WatchHistoryItem{
			Video:     *toVideoInfo(&entries[i].Video),
			WatchedAt: entries[i].WatchedAt,
		})
	}

	return pagination.NewPage(items, total, params), nil
}
