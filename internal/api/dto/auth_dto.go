package dto

// RegisterRequest 注册请求（multipart/form-data，头像文件单独读取）
type RegisterRequest struct {
	UserName string `form:"user_name" binding:"required,min=3,max=64"`
	Email    string `form:"email" binding:"required,email"`
	FullName string `form:"full_name" binding:"required,min=1,max=255"`
	Password string `form:"password" binding:"required,min=6,max=72"`
}

// LoginRequest 登录请求，user_name 与 email 二选一
type LoginRequest struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest 刷新令牌请求（也可通过 Cookie 携带）
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenData 登录/刷新成功后的凭据对
type TokenData struct {
	User         UserInfo `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
}
