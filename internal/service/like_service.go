package service

import (
	"errors"

	"tubehub/internal/api/dto"
	"tubehub/internal/model"
	"tubehub/internal/repository"
	"tubehub/pkg/pagination"

	"gorm.io/gorm"
)

var ErrTweetNotFound = errors.New("动态不存在")

type LikeService struct {
	likeRepo    *repository.LikeRepository
	videoRepo   *repository.VideoRepository
	commentRepo *repository.CommentRepository
	tweetRepo   *repository.TweetRepository
}

func NewLikeService(
	likeRepo *repository.LikeRepository,
	videoRepo *repository.VideoRepository,
	commentRepo *repository.CommentRepository,
	tweetRepo *repository.TweetRepository,
) *LikeService {
	return &LikeService{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
	}
}

// ToggleVideoLike 切换对视频的点赞
func (s *LikeService) ToggleVideoLike(userID, videoID int64) (*dto.LikeToggleData, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}
	return s.toggle(userID, model.LikeTargetVideo, videoID)
}

// ToggleCommentLike 切换对评论的点赞
func (s *LikeService) ToggleCommentLike(userID, commentID int64) (*dto.LikeToggleData, error) {
	if _, err := s.commentRepo.GetByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return s.toggle(userID, model.LikeTargetComment, commentID)
}

// ToggleTweetLike 切换对动态的点赞
func (s *LikeService) ToggleTweetLike(userID, tweetID int64) (*dto.LikeToggleData, error) {
	if _, err := s.tweetRepo.GetByID(tweetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTweetNotFound
		}
		return nil, err
	}
	return s.toggle(userID, model.LikeTargetTweet, tweetID)
}

// toggle 先尝试原子插入，冲突说明已点赞则转为删除。
// 两个并发切换最终合并为一次有效切换，不会产生重复点赞
func (s *LikeService) toggle(userID int64, targetType string, targetID int64) (*dto.LikeToggleData, error) {
	inserted, err := s.likeRepo.TryInsert(userID, targetType, targetID)
	if err != nil {
		return nil, err
	}

	liked := inserted
	if !inserted {
		if _, err := s.likeRepo.Delete(userID, targetType, targetID); err != nil {
			return nil, err
		}
		liked = false
	}

	count, err := s.likeRepo.CountByTarget(targetType, targetID)
	if err != nil {
		return nil, err
	}

	return &dto.LikeToggleData{Liked: liked, LikeCount: count}, nil
}

// GetLikedVideos 当前用户点赞过的视频分页（按点赞时间倒序）
func (s *LikeService) GetLikedVideos(userID int64, params pagination.Params) (*pagination.Page, error) {
	params = params.Normalize()

	videos, total, err := s.likeRepo.ListLikedVideos(userID, params.Offset(), params.Limit)
	if err != nil {
		return nil, err
	}

	docs := make([]dto.VideoInfo, 0, len(videos))
	for i := range videos {
		docs = append(docs, *toVideoInfo(&videos[i]))
	}

	return pagination.NewPage(docs, total, params), nil
}
