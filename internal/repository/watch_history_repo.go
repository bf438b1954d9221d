package repository

import (
	"time"

	"tubehub/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WatchHistoryRepository struct {
	db *gorm.DB
}

func NewWatchHistoryRepository(db *gorm.DB) *WatchHistoryRepository {
	return &WatchHistoryRepository{db: db}
}

// Record 记录一次观看。(user_id, video_id) 冲突时只刷新观看时间，
// 历史里同一视频始终只有一条
func (r *WatchHistoryRepository) Record(userID, videoID int64) error {
	entry := &model.WatchHistory{
		UserID:    userID,
		VideoID:   videoID,
		WatchedAt: time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"watched_at": entry.WatchedAt}),
	}).Create(entry).Error
}

// List 用户观看历史（含视频与其作者，按最近观看倒序）。
// 视频或作者已删除的条目被内联过滤掉
func (r *WatchHistoryRepository) List(userID int64, skip, limit int) ([]model.WatchHistory, int64, error) {
	query := r.db.Model(&model.WatchHistory{}).
		Joins("JOIN videos ON videos.id = watch_histories.video_id").
		Joins("JOIN users ON users.id = videos.owner_id").
		Where("watch_histories.user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []model.WatchHistory
	err := query.Preload("Video").Preload("Video.Owner").
		Order("watch_histories.watched_at DESC").
		Offset(skip).Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// DeleteByVideo 删除某视频的全部观看记录（视频删除时级联清理）
func (r *WatchHistoryRepository) DeleteByVideo(videoID int64) error {
	return r.db.Where("video_id = ?", videoID).Delete(&model.WatchHistory{}).Error
}
