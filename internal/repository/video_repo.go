package repository

import (
	"tubehub/internal/model"

	"gorm.io/gorm"
)

// 列表排序字段白名单，默认 created_at
var videoSortKeys = map[string]string{
	"created_at": "videos.created_at",
	"views":      "videos.views",
	"duration":   "videos.duration",
	"title":      "videos.title",
}

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// GetByID 根据 ID 获取视频
func (r *VideoRepository) GetByID(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.First(&video, id).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByIDWithOwner 根据 ID 获取视频（含作者信息；作者已不存在的视频视为缺失）
func (r *VideoRepository) GetByIDWithOwner(id int64) (*model.Video, error) {
	var video model.Video
	err := r.db.Preload("Owner").
		Joins("JOIN users ON users.id = videos.owner_id").
		Where("videos.id = ?", id).
		First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByIDAndOwner 根据视频 ID + 作者 ID 查询（权限校验用）
func (r *VideoRepository) GetByIDAndOwner(videoID, ownerID int64) (*model.Video, error) {
	var video model.Video
	err := r.db.Where("id = ? AND owner_id = ?", videoID, ownerID).First(&video).Error
	if err != nil {
		return nil, err
	}
	return &video, nil
}

// Create 创建视频记录
func (r *VideoRepository) Create(video *model.Video) error {
	return r.db.Create(video).Error
}

// Update 更新视频字段
func (r *VideoRepository) Update(id int64, updates map[string]interface{}) (*model.Video, error) {
	result := r.db.Model(&model.Video{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// Delete 删除视频记录
func (r *VideoRepository) Delete(id int64) error {
	result := r.db.Delete(&model.Video{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListFilter 视频列表筛选条件
type ListFilter struct {
	OwnerID       *int64  // 只看某作者
	PublishedOnly bool    // 只看已发布
	Search        *string // 标题/描述大小写不敏感子串匹配
	SortBy        string
	SortDesc      bool
}

// List 视频列表查询（筛选、作者内联、排序、分页窗口）。
// 作者通过 INNER JOIN 关联：作者已不存在的记录直接略过
func (r *VideoRepository) List(skip, limit int, filter ListFilter) ([]model.Video, int64, error) {
	query := r.db.Model(&model.Video{}).
		Joins("JOIN users ON users.id = videos.owner_id")

	if filter.OwnerID != nil {
		query = query.Where("videos.owner_id = ?", *filter.OwnerID)
	}
	if filter.PublishedOnly {
		query = query.Where("videos.is_published = ?", true)
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		query = query.Where("videos.title ILIKE ? OR videos.description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortColumn, ok := videoSortKeys[filter.SortBy]
	if !ok {
		sortColumn = "videos.created_at"
	}
	order := sortColumn + " ASC"
	if filter.SortDesc {
		order = sortColumn + " DESC"
	}

	var videos []model.Video
	err := query.Preload("Owner").Order(order).
		Offset(skip).Limit(limit).Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}

	return videos, total, nil
}

// IncrementViews 播放量 +1（每次按 ID 获取视频时调用，单调递增）
func (r *VideoRepository) IncrementViews(id int64) error {
	return r.db.Model(&model.Video{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// ChannelStats 频道视频汇总（总播放量、视频数、获赞数）。
// 每个视频先关联自己的点赞数，再对频道下全部视频做一次归并
type ChannelStats struct {
	TotalViews  int64 `json:"total_views"`
	TotalVideos int64 `json:"total_videos"`
	TotalLikes  int64 `json:"total_likes"`
}

// GetChannelStats 汇总某频道（用户）全部视频的统计
func (r *VideoRepository) GetChannelStats(ownerID int64) (*ChannelStats, error) {
	var stats ChannelStats
	err := r.db.Raw(`
		SELECT
			COALESCE(SUM(v.views), 0)  AS total_views,
			COUNT(v.id)                AS total_videos,
			COALESCE(SUM(lc.like_count), 0) AS total_likes
		FROM videos v
		LEFT JOIN (
			SELECT target_id, COUNT(*) AS like_count
			FROM likes
			WHERE target_type = ?
			GROUP BY target_id
		) lc ON lc.target_id = v.id
		WHERE v.owner_id = ?`,
		model.LikeTargetVideo, ownerID,
	).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
