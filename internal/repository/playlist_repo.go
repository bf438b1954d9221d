package repository

import (
	"tubehub/internal/model"

	"gorm.io/gorm"
)

type PlaylistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

func (r *PlaylistRepository) Create(playlist *model.Playlist) error {
	return r.db.Create(playlist).Error
}

func (r *PlaylistRepository) GetByID(id int64) (*model.Playlist, error) {
	var playlist model.Playlist
	err := r.db.First(&playlist, id).Error
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// GetByIDWithVideos 获取播放列表详情：创建者 + 按 position 排序的条目，
// 条目嵌套视频及其作者
func (r *PlaylistRepository) GetByIDWithVideos(id int64) (*model.Playlist, error) {
	var playlist model.Playlist
	err := r.db.
		Preload("Owner").
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("playlist_videos.position ASC")
		}).
		Preload("Videos.Video").
		Preload("Videos.Video.Owner").
		First(&playlist, id).Error
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// ListByOwner 用户的播放列表（条目结构同详情）
func (r *PlaylistRepository) ListByOwner(ownerID int64) ([]model.Playlist, error) {
	var playlists []model.Playlist
	err := r.db.
		Preload("Owner").
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("playlist_videos.position ASC")
		}).
		Preload("Videos.Video").
		Preload("Videos.Video.Owner").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&playlists).Error
	if err != nil {
		return nil, err
	}
	return playlists, nil
}

// Update 更新名称/描述（仅创建者本人）
func (r *PlaylistRepository) Update(playlistID, ownerID int64, updates map[string]interface{}) (*model.Playlist, error) {
	result := r.db.Model(&model.Playlist{}).
		Where("id = ? AND owner_id = ?", playlistID, ownerID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(playlistID)
}

// Delete 删除播放列表及其条目（仅创建者本人），返回是否实际删除
func (r *PlaylistRepository) Delete(playlistID, ownerID int64) (bool, error) {
	result := r.db.Where("id = ? AND owner_id = ?", playlistID, ownerID).Delete(&model.Playlist{})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	if err := r.db.Where("playlist_id = ?", playlistID).Delete(&model.PlaylistVideo{}).Error; err != nil {
		return true, err
	}
	return true, nil
}

// AddVideo 追加视频到列表尾部（允许重复条目）
func (r *PlaylistRepository) AddVideo(playlistID, videoID int64) error {
	var maxPosition int
	err := r.db.Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&maxPosition).Error
	if err != nil {
		return err
	}

	entry := &model.PlaylistVideo{
		PlaylistID: playlistID,
		VideoID:    videoID,
		Position:   maxPosition + 1,
	}
	return r.db.Create(entry).Error
}

// RemoveVideo 从列表移除某视频的全部条目，返回是否实际移除
func (r *PlaylistRepository) RemoveVideo(playlistID, videoID int64) (bool, error) {
	result := r.db.
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistVideo{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// RemoveVideoEverywhere 从所有播放列表移除某视频（视频删除时级联清理）
func (r *PlaylistRepository) RemoveVideoEverywhere(videoID int64) error {
	return r.db.Where("video_id = ?", videoID).Delete(&model.PlaylistVideo{}).Error
}
