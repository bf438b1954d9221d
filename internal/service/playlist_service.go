package service

import (
	"errors"

	"tubehub/internal/api/dto"
	"tubehub/internal/model"
	"tubehub/internal/repository"

	"gorm.io/gorm"
)

var (
	ErrPlaylistNotFound = errors.New("播放列表不存在")
	ErrNotPlaylistOwner = errors.New("没有操作该播放列表的权限")
	ErrVideoNotInList   = errors.New("该视频不在播放列表中")
)

type PlaylistService struct {
	playlistRepo *repository.PlaylistRepository
	videoRepo    *repository.VideoRepository
	userRepo     *repository.UserRepository
}

func NewPlaylistService(
	playlistRepo *repository.PlaylistRepository,
	videoRepo *repository.VideoRepository,
	userRepo *repository.UserRepository,
) *PlaylistService {
	return &PlaylistService{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		userRepo:     userRepo,
	}
}

// Create 创建播放列表
func (s *PlaylistService) Create(ownerID int64, req *dto.PlaylistCreateRequest) (*dto.PlaylistInfo, error) {
	playlist := &model.Playlist{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.playlistRepo.Create(playlist); err != nil {
		return nil, err
	}
	return toPlaylistInfo(playlist), nil
}

// GetByID 播放列表详情，条目按 position 排序
func (s *PlaylistService) GetByID(playlistID int64) (*dto.PlaylistInfo, error) {
	playlist, err := s.playlistRepo.GetByIDWithVideos(playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, err
	}
	return toPlaylistInfo(playlist), nil
}

// ListByUser 某用户的全部播放列表
func (s *PlaylistService) ListByUser(ownerID int64) ([]dto.PlaylistInfo, error) {
	if _, err := s.userRepo.GetByID(ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	playlists, err := s.playlistRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	infos := make([]dto.PlaylistInfo, 0, len(playlists))
	for i := range playlists {
		infos = append(infos, *toPlaylistInfo(&playlists[i]))
	}
	return infos, nil
}

// Update 更新名称与描述（仅创建者本人）
func (s *PlaylistService) Update(playlistID, ownerID int64, req *dto.PlaylistUpdateRequest) (*dto.PlaylistInfo, error) {
	playlist, err := s.playlistRepo.Update(playlistID, ownerID, map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.classifyMiss(playlistID)
		}
		return nil, err
	}
	return toPlaylistInfo(playlist), nil
}

// Delete 删除播放列表及其全部条目（仅创建者本人）
func (s *PlaylistService) Delete(playlistID, ownerID int64) error {
	deleted, err := s.playlistRepo.Delete(playlistID, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return s.classifyMiss(playlistID)
	}
	return nil
}

// AddVideo 把视频追加到列表尾部（仅创建者本人，允许重复）
func (s *PlaylistService) AddVideo(playlistID, videoID, ownerID int64) (*dto.PlaylistInfo, error) {
	if err := s.requireOwned(playlistID, ownerID); err != nil {
		return nil, err
	}

	if _, err := s.videoRepo.GetByID(videoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVideoNotFound
		}
		return nil, err
	}

	if err := s.playlistRepo.AddVideo(playlistID, videoID); err != nil {
		return nil, err
	}

	return s.GetByID(playlistID)
}

// RemoveVideo 从列表移除某视频的全部条目（仅创建者本人）
func (s *PlaylistService) RemoveVideo(playlistID, videoID, ownerID int64) (*dto.PlaylistInfo, error) {
	if err := s.requireOwned(playlistID, ownerID); err != nil {
		return nil, err
	}

	removed, err := s.playlistRepo.RemoveVideo(playlistID, videoID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, ErrVideoNotInList
	}

	return s.GetByID(playlistID)
}

func (s *PlaylistService) requireOwned(playlistID, ownerID int64) error {
	playlist, err := s.playlistRepo.GetByID(playlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlaylistNotFound
		}
		return err
	}
	if playlist.OwnerID != ownerID {
		return ErrNotPlaylistOwner
	}
	return nil
}

func (s *PlaylistService) classifyMiss(playlistID int64) error {
	if _, err := s.playlistRepo.GetByID(playlistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPlaylistNotFound
		}
		return err
	}
	return ErrNotPlaylistOwner
}

func toPlaylistInfo(playlist *model.Playlist) *dto.PlaylistInfo {
	entries := make([]dto.PlaylistEntry, 0, len(playlist.Videos))
	for i := range playlist.Videos {
		entry := &playlist.Videos[i]
		entries = append(entries, dto.PlaylistEntry{
			Position: entry.Position,
			Video:    *toVideoInfo(&entry.Video),
		})
	}

	return &dto.PlaylistInfo{
		ID:          playlist.ID,
		Name:        playlist.Name,
		Description: playlist.Description,
		CreatedAt:   playlist.CreatedAt,
		UpdatedAt:   playlist.UpdatedAt,
		Owner:       toOwnerBrief(&playlist.Owner),
		Videos:      entries,
	}
}
