package dto

// LikeToggleData 点赞切换结果
type LikeToggleData struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}
