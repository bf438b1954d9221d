package handler

import (
	"errors"

	"tubehub/internal/api/dto"
	"tubehub/internal/api/middleware"
	"tubehub/internal/api/response"
	"tubehub/internal/config"
	"tubehub/internal/service"
	"tubehub/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register POST /api/v1/user/register
// @Summary 用户注册
// @Tags user
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} response.Response
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	avatarHeader, err := c.FormFile("avatar")
	if err != nil {
		response.BadRequest(c, "请上传头像文件")
		return
	}
	avatar, closeAvatar, err := openMediaFile(avatarHeader)
	if err != nil {
		response.InternalError(c, "打开上传文件失败")
		return
	}
	defer closeAvatar()

	var cover *service.MediaFile
	if coverHeader, err := c.FormFile("cover_image"); err == nil {
		var closeCover func()
		cover, closeCover, err = openMediaFile(coverHeader)
		if err != nil {
			response.InternalError(c, "打开上传文件失败")
			return
		}
		defer closeCover()
	}

	info, err := h.authService.Register(&req, avatar, cover)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.Created(c, "注册成功", info)
}

// Login POST /api/v1/user/login
// @Summary 用户登录
// @Tags user
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	data, err := h.authService.Login(&req)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	setAuthCookies(c, data)
	response.OK(c, "登录成功", data)
}

// Logout POST /api/v1/user/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.authService.Logout(currentUserID); err != nil {
		handleAuthError(c, err)
		return
	}

	clearAuthCookies(c)
	response.OK(c, "登出成功", nil)
}

// Refresh POST /api/v1/user/refresh-token
// 刷新令牌优先取 Cookie，其次取请求体
func (h *AuthHandler) Refresh(c *gin.Context) {
	token, _ := c.Cookie(middleware.CookieRefreshToken)
	if token == "" {
		var req dto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}

	data, err := h.authService.Refresh(token)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	setAuthCookies(c, data)
	response.OK(c, "令牌刷新成功", data)
}

// GetCurrentUser GET /api/v1/user/current-user
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.authService.GetCurrentUser(currentUserID)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, "获取当前用户成功", info)
}

// ChangePassword POST /api/v1/user/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	if err := h.authService.ChangePassword(currentUserID, &req); err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, "密码修改成功", nil)
}

// UpdateAccount PATCH /api/v1/user/update-account
func (h *AuthHandler) UpdateAccount(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "请求参数无效: "+err.Error())
		return
	}

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := h.authService.UpdateAccount(currentUserID, &req)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, "账号资料更新成功", info)
}

// UpdateAvatar PATCH /api/v1/user/avatar
func (h *AuthHandler) UpdateAvatar(c *gin.Context) {
	h.updateImage(c, "avatar", h.authService.UpdateAvatar, "头像更新成功")
}

// UpdateCoverImage PATCH /api/v1/user/cover-image
func (h *AuthHandler) UpdateCoverImage(c *gin.Context) {
	h.updateImage(c, "cover_image", h.authService.UpdateCoverImage, "封面图更新成功")
}

func (h *AuthHandler) updateImage(c *gin.Context, field string, update func(int64, *service.MediaFile) (*dto.UserInfo, error), okMessage string) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		response.BadRequest(c, "请上传图片文件")
		return
	}

	media, closeFile, err := openMediaFile(fileHeader)
	if err != nil {
		response.InternalError(c, "打开上传文件失败")
		return
	}
	defer closeFile()

	currentUserID, _ := middleware.GetCurrentUserID(c)

	info, err := update(currentUserID, media)
	if err != nil {
		handleAuthError(c, err)
		return
	}

	response.OK(c, okMessage, info)
}

// setAuthCookies 把凭据对写入 HttpOnly Cookie，有效期与令牌一致
func setAuthCookies(c *gin.Context, data *dto.TokenData) {
	jwtCfg := config.GetJWT()
	secure := config.GetApp().Mode == "release"

	c.SetCookie(middleware.CookieAccessToken, data.AccessToken,
		int(jwtCfg.AccessExpireDuration().Seconds()), "/", "", secure, true)
	c.SetCookie(middleware.CookieRefreshToken, data.RefreshToken,
		int(jwtCfg.RefreshExpireDuration().Seconds()), "/", "", secure, true)
}

func clearAuthCookies(c *gin.Context) {
	secure := config.GetApp().Mode == "release"
	c.SetCookie(middleware.CookieAccessToken, "", -1, "/", "", secure, true)
	c.SetCookie(middleware.CookieRefreshToken, "", -1, "/", "", secure, true)
}

func handleAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredential),
		errors.Is(err, service.ErrWrongPassword):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrMissingRefresh),
		errors.Is(err, service.ErrInvalidRefresh),
		errors.Is(err, service.ErrStaleRefresh):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrMediaUploadFailed):
		response.InternalError(c, err.Error())
	default:
		logger.Error("Auth operation failed", zap.Error(err))
		response.InternalError(c, "操作失败，请稍后重试")
	}
}
