package model

import "time"

// Playlist 播放列表模型
type Playlist struct {
	ID          int64  `gorm:"primaryKey;autoIncrement;comment:播放列表ID" json:"id"`
	OwnerID     int64  `gorm:"not null;index:idx_playlists_owner_id;comment:创建者用户ID" json:"owner_id"`
	Name        string `gorm:"size:200;not null;comment:名称" json:"name"`
	Description string `gorm:"type:text;not null;comment:描述" json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime;comment:创建时间" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updated_at"`

	// 关联关系
	Owner  User            `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Videos []PlaylistVideo `gorm:"foreignKey:PlaylistID" json:"videos,omitempty"`
}

func (Playlist) TableName() string {
	return "playlists"
}

// PlaylistVideo 播放列表条目，按 position 排序，允许重复视频
type PlaylistVideo struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PlaylistID int64     `gorm:"not null;index:idx_playlist_videos_playlist_id" json:"playlist_id"`
	VideoID    int64     `gorm:"not null;index:idx_playlist_videos_video_id" json:"video_id"`
	Position   int       `gorm:"not null;default:0;comment:列表内顺序" json:"position"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Video Video `gorm:"foreignKey:VideoID" json:"video,omitempty"`
}

func (PlaylistVideo) TableName() string {
	return "playlist_videos"
}
