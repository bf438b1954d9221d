package repository

import (
	"tubehub/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) GetByID(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByIDWithOwner 根据 ID 获取评论（含作者信息；作者已不存在的评论视为缺失）
func (r *CommentRepository) GetByIDWithOwner(id int64) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.Preload("Owner").
		Joins("JOIN users ON users.id = comments.owner_id").
		Where("comments.id = ?", id).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Update 更新评论内容（仅作者本人）
func (r *CommentRepository) Update(commentID, ownerID int64, content string) (*model.Comment, error) {
	result := r.db.Model(&model.Comment{}).
		Where("id = ? AND owner_id = ?", commentID, ownerID).
		Update("content", content)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByIDWithOwner(commentID)
}

// Delete 删除评论（仅作者本人），返回是否实际删除
func (r *CommentRepository) Delete(commentID, ownerID int64) (bool, error) {
	result := r.db.Where("id = ? AND owner_id = ?", commentID, ownerID).Delete(&model.Comment{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListByVideo 获取视频的评论列表（含作者信息，按时间倒序）。
// 作者已不存在的评论直接略过
func (r *CommentRepository) ListByVideo(videoID int64, skip, limit int) ([]model.Comment, int64, error) {
	query := r.db.Model(&model.Comment{}).
		Joins("JOIN users ON users.id = comments.owner_id").
		Where("comments.video_id = ?", videoID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []model.Comment
	err := query.Preload("Owner").Order("comments.created_at DESC").
		Offset(skip).Limit(limit).Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// DeleteByVideo 删除视频下全部评论（视频删除时级联清理）
func (r *CommentRepository) DeleteByVideo(videoID int64) error {
	return r.db.Where("video_id = ?", videoID).Delete(&model.Comment{}).Error
}
