package utils

import (
	"errors"
	"fmt"
	"time"

	"tubehub/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// 令牌类型，写入 Claims 防止访问令牌与刷新令牌互换使用
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims 自定义 JWT Claims
type Claims struct {
	UserID    int64  `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// HashPassword 使用 bcrypt 对密码进行哈希
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// VerifyPassword 验证密码是否与哈希匹配
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateAccessToken 生成短期访问令牌（分钟级有效期）
func GenerateAccessToken(userID int64) (string, error) {
	jwtCfg := config.GetJWT()
	return generateToken(userID, TokenTypeAccess, jwtCfg.AccessSecret, jwtCfg.AccessExpireDuration())
}

// GenerateRefreshToken 生成长期刷新令牌（天级有效期）
func GenerateRefreshToken(userID int64) (string, error) {
	jwtCfg := config.GetJWT()
	return generateToken(userID, TokenTypeRefresh, jwtCfg.RefreshSecret, jwtCfg.RefreshExpireDuration())
}

func generateToken(userID int64, tokenType, secret string, expire time.Duration) (string, error) {
	claims := Claims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    config.GetApp().Name,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ParseAccessToken 解析并验证访问令牌
func ParseAccessToken(tokenString string) (*Claims, error) {
	return parseToken(tokenString, TokenTypeAccess, config.GetJWT().AccessSecret)
}

// ParseRefreshToken 解析并验证刷新令牌（仅校验签名与有效期，
// 与用户记录上持久化值的比对由 AuthService 完成）
func ParseRefreshToken(tokenString string) (*Claims, error) {
	return parseToken(tokenString, TokenTypeRefresh, config.GetJWT().RefreshSecret)
}

func parseToken(tokenString, tokenType, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.TokenType != tokenType {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
