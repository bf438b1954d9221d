package service

import (
	"errors"

	"tubehub/internal/api/dto"
	"tubehub/internal/model"
	"tubehub/internal/repository"
	"tubehub/pkg/pagination"

	"gorm.io/gorm"
)

var (
	ErrCommentNotFound = errors.New("评论不存在")
	ErrNotCommentOwner = errors.New("没有操作该评论的权限")
)

type CommentService struct {
	commentRepo *repository.CommentRepository
	videoRepo   *repository.VideoRepository
	likeRepo    *repository.LikeRepository
}

func NewCommentService(
	commentRepo *repository.CommentRepository,
	videoRepo *repository.VideoRepository,
	likeRepo *repository.LikeRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		likeRepo:    likeRepo,
	}
}

// Create 在视频下发表评论，目标视频必须存在
func (s *CommentService) Create(videoID, ownerID int64, req *dto.CommentCreateRequest) (*dto.CommentInfo, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		VideoID: videoID,
		OwnerID: ownerID,
		Content: req.Content,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	// 回读带作者信息的记录，创建响应与列表同构
	if full, err := s.commentRepo.GetByIDWithOwner(comment.ID); err == nil {
		comment = full
	}

	return toCommentInfo(comment), nil
}

// ListByVideo 视频评论分页（按时间倒序）
func (s *CommentService) ListByVideo(videoID int64, params pagination.Params) (*pagination.Page, error) {
	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	params = params.Normalize()
	comments, total, err := s.commentRepo.ListByVideo(videoID, params.Offset(), params.Limit)
	if err != nil {
		return nil, err
	}

	docs := make([]dto.CommentInfo, 0, len(comments))
	for i := range comments {
		docs = append(docs, *toCommentInfo(&comments[i]))
	}

	return pagination.NewPage(docs, total, params), nil
}

// Update 修改评论内容（仅作者本人）
func (s *CommentService) Update(commentID, ownerID int64, req *dto.CommentUpdateRequest) (*dto.CommentInfo, error) {
	comment, err := s.commentRepo.Update(commentID, ownerID, req.Content)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.classifyMiss(commentID)
		}
		return nil, err
	}
	return toCommentInfo(comment), nil
}

// Delete 删除评论（仅作者本人），级联清理该评论的点赞
func (s *CommentService) Delete(commentID, ownerID int64) error {
	deleted, err := s.commentRepo.Delete(commentID, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return s.classifyMiss(commentID)
	}

	return s.likeRepo.DeleteByTarget(model.LikeTargetComment, commentID)
}

// classifyMiss 区分评论不存在与无权限两种失败
func (s *CommentService) classifyMiss(commentID int64) error {
	if _, err := s.commentRepo.GetByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	return ErrNotCommentOwner
}

func toCommentInfo(comment *model.Comment) *dto.CommentInfo {
	return &dto.CommentInfo{
		ID:        comment.ID,
		VideoID:   comment.VideoID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
		Owner:     toOwnerBrief(&comment.Owner),
	}
}
