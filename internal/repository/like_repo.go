package repository

import (
	"tubehub/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// TryInsert 原子插入点赞记录，依赖 (user_id, target_type, target_id)
// 唯一索引做 ON CONFLICT DO NOTHING。返回是否实际插入：
// false 表示该点赞已存在（此时调用方执行删除完成切换）
func (r *LikeRepository) TryInsert(userID int64, targetType string, targetID int64) (bool, error) {
	like := &model.Like{
		UserID:     userID,
		TargetType: targetType,
		TargetID:   targetID,
	}
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete 删除点赞记录，返回是否实际删除
func (r *LikeRepository) Delete(userID int64, targetType string, targetID int64) (bool, error) {
	result := r.db.
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, targetType, targetID).
		Delete(&model.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountByTarget 统计某目标的点赞数
func (r *LikeRepository) CountByTarget(targetType string, targetID int64) (int64, error) {
	var count int64
	err := r.db.Model(&model.Like{}).
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Count(&count).Error
	return count, err
}

// DeleteByTarget 删除某目标的全部点赞（目标实体删除时级联清理）
func (r *LikeRepository) DeleteByTarget(targetType string, targetID int64) error {
	return r.db.
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Delete(&model.Like{}).Error
}

// ListLikedVideos 某用户点赞过的视频列表（含作者信息，按点赞时间倒序）。
// 视频或作者已删除的点赞记录被内联过滤掉
func (r *LikeRepository) ListLikedVideos(userID int64, skip, limit int) ([]model.Video, int64, error) {
	query := r.db.Model(&model.Video{}).
		Joins("JOIN likes ON likes.target_type = ? AND likes.target_id = videos.id", model.LikeTargetVideo).
		Joins("JOIN users ON users.id = videos.owner_id").
		Where("likes.user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []model.Video
	err := query.Preload("Owner").Order("likes.created_at DESC").
		Offset(skip).Limit(limit).Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}

	return videos, total, nil
}
