package dto

// SearchVideoRequest 视频搜索请求
type SearchVideoRequest struct {
	Q     string `form:"q" binding:"required,min=1"`
	Page  int    `form:"page,default=1"`
	Limit int    `form:"limit,default=10"`
}
