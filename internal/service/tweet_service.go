package service

import (
	"errors"

	"tubehub/internal/api/dto"
	"tubehub/internal/model"
	"tubehub/internal/repository"
	"tubehub/pkg/pagination"

	"gorm.io/gorm"
)

var ErrNotTweetOwner = errors.New("没有操作该动态的权限")

type TweetService struct {
	tweetRepo *repository.TweetRepository
	userRepo  *repository.UserRepository
	likeRepo  *repository.LikeRepository
}

func NewTweetService(
	tweetRepo *repository.TweetRepository,
	userRepo *repository.UserRepository,
	likeRepo *repository.LikeRepository,
) *TweetService {
	return &TweetService{
		tweetRepo: tweetRepo,
		userRepo:  userRepo,
		likeRepo:  likeRepo,
	}
}

// Create 发布动态
func (s *TweetService) Create(ownerID int64, req *dto.TweetCreateRequest) (*dto.TweetInfo, error) {
	tweet := &model.Tweet{
		OwnerID: ownerID,
		Content: req.Content,
	}
	if err := s.tweetRepo.Create(tweet); err != nil {
		return nil, err
	}

	// 回读带作者信息的记录，创建响应与列表同构
	if full, err := s.tweetRepo.GetByIDWithOwner(tweet.ID); err == nil {
		tweet = full
	}

	return toTweetInfo(tweet), nil
}

// ListByUser 某用户的动态分页（按时间倒序）
func (s *TweetService) ListByUser(ownerID int64, params pagination.Params) (*pagination.Page, error) {
	if _, err := s.userRepo.GetByID(ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	params = params.Normalize()
	tweets, total, err := s.tweetRepo.ListByOwner(ownerID, params.Offset(), params.Limit)
	if err != nil {
		return nil, err
	}

	docs := make([]dto.TweetInfo, 0, len(tweets))
	for i := range tweets {
		docs = append(docs, *toTweetInfo(&tweets[i]))
	}

	return pagination.NewPage(docs, total, params), nil
}

// Update 修改动态内容（仅作者本人）
func (s *TweetService) Update(tweetID, ownerID int64, req *dto.TweetUpdateRequest) (*dto.TweetInfo, error) {
	tweet, err := s.tweetRepo.Update(tweetID, ownerID, req.Content)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.classifyMiss(tweetID)
		}
		return nil, err
	}
	return toTweetInfo(tweet), nil
}

// Delete 删除动态（仅作者本人），级联清理该动态的点赞
func (s *TweetService) Delete(tweetID, ownerID int64) error {
	deleted, err := s.tweetRepo.Delete(tweetID, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return s.classifyMiss(tweetID)
	}

	return s.likeRepo.DeleteByTarget(model.LikeTargetTweet, tweetID)
}

func (s *TweetService) classifyMiss(tweetID int64) error {
	if _, err := s.tweetRepo.GetByID(tweetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTweetNotFound
		}
		return err
	}
	return ErrNotTweetOwner
}

func toTweetInfo(tweet *model.Tweet) *dto.TweetInfo {
	return &dto.TweetInfo{
		ID:        tweet.ID,
		Content:   tweet.Content,
		CreatedAt: tweet.CreatedAt,
		UpdatedAt: tweet.UpdatedAt,
		Owner:     toOwnerBrief(&tweet.Owner),
	}
}
