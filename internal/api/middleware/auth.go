package middleware

import (
	"strings"

	"tubehub/internal/api/response"
	"tubehub/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextKeyUserID = "currentUserID"

	// Cookie 名称，登录/刷新时由 AuthHandler 写入
	CookieAccessToken  = "accessToken"
	CookieRefreshToken = "refreshToken"
)

// AuthRequired 认证中间件，访问令牌可来自 Cookie 或 Authorization 头
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractAccessToken(c)
		if token == "" {
			response.Unauthorized(c, "缺少认证令牌")
			c.Abort()
			return
		}

		claims, err := utils.ParseAccessToken(token)
		if err != nil {
			response.Unauthorized(c, "无效或过期的认证令牌")
			c.Abort()
			return
		}

		// 将用户 ID 存入上下文，后续 Handler 可通过 GetCurrentUserID 获取
		c.Set(ContextKeyUserID, claims.UserID)
		c.Next()
	}
}

// AuthOptional 可选认证，令牌有效时注入用户 ID，缺失或无效时放行。
// 公开的视频接口用它来区分游客与本人（本人可见未发布视频、记录观看历史）
func AuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractAccessToken(c); token != "" {
			if claims, err := utils.ParseAccessToken(token); err == nil {
				c.Set(ContextKeyUserID, claims.UserID)
			}
		}
		c.Next()
	}
}

// GetCurrentUserID 从 Gin Context 中获取当前登录用户 ID
func GetCurrentUserID(c *gin.Context) (int64, bool) {
	val, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := val.(int64)
	return userID, ok
}

// extractAccessToken 依次尝试 accessToken Cookie 与 Authorization Bearer 头
func extractAccessToken(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieAccessToken); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
