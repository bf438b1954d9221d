package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"tubehub/internal/api/dto"
	infraMinio "tubehub/internal/infra/minio"
	"tubehub/internal/model"
	"tubehub/internal/repository"
	"tubehub/pkg/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("用户不存在")
	ErrUserExists        = errors.New("用户名或邮箱已被注册")
	ErrInvalidCredential = errors.New("用户名或密码错误")
	ErrWrongPassword     = errors.New("原密码错误")
	ErrMissingRefresh    = errors.New("缺少刷新令牌")
	ErrInvalidRefresh    = errors.New("无效或过期的刷新令牌")
	ErrStaleRefresh      = errors.New("刷新令牌已被使用或已失效")
	ErrMediaUploadFailed = errors.New("媒体文件上传失败")
)

// MediaFile 待上传的媒体文件（handler 从 multipart 表单读取）
type MediaFile struct {
	Reader      io.Reader
	Size        int64
	ContentType string
	Ext         string
}

type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register 用户注册。唯一性检查先于任何媒体上传，
// 入库失败时补偿删除已上传的对象
func (s *AuthService) Register(req *dto.RegisterRequest, avatar *MediaFile, cover *MediaFile) (*dto.UserInfo, error) {
	userName := strings.ToLower(strings.TrimSpace(req.UserName))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepo.ExistsByUserNameOrEmail(userName, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	avatarURL, err := uploadMedia("avatars", avatar)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMediaUploadFailed, err)
	}

	coverURL := ""
	if cover != nil {
		coverURL, err = uploadMedia("covers", cover)
		if err != nil {
			cleanupMedia("register-cover-failed", avatarURL)
			return nil, fmt.Errorf("%w: %v", ErrMediaUploadFailed, err)
		}
	}

	user := &model.User{
		UserName:   userName,
		Email:      email,
		FullName:   req.FullName,
		Password:   hashedPassword,
		Avatar:     avatarURL,
		CoverImage: coverURL,
	}

	if err := s.userRepo.Create(user); err != nil {
		// 上传成功但入库失败：回收已上传的对象
		cleanupMedia("register-store-failed", avatarURL, coverURL)
		// 并发注册与预检查之间的竞态由唯一索引兜底，这里统一映射为冲突
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return toUserInfo(user), nil
}

// Login 用户登录（用户名或邮箱 + 密码），签发新凭据对并
// 覆写刷新令牌单槽（其它设备的刷新令牌随之失效）
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenData, error) {
	login := strings.ToLower(strings.TrimSpace(req.UserName))
	if login == "" {
		login = strings.ToLower(strings.TrimSpace(req.Email))
	}
	if login == "" {
		return nil, ErrInvalidCredential
	}

	user, err := s.userRepo.GetByLogin(login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !utils.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredential
	}

	return s.issueTokenPair(user)
}

// Logout 登出：清空刷新令牌单槽，已签发的刷新令牌永久失效
func (s *AuthService) Logout(userID int64) error {
	return s.userRepo.UpdateRefreshToken(userID, nil)
}

// Refresh 刷新令牌轮换。签名/有效期校验之外还要与用户记录上
// 持久化的值等值比对：值已被覆写（或登出清空）的旧令牌拒绝为重放
func (s *AuthService) Refresh(incomingToken string) (*dto.TokenData, error) {
	if incomingToken == "" {
		return nil, ErrMissingRefresh
	}

	claims, err := utils.ParseRefreshToken(incomingToken)
	if err != nil {
		return nil, ErrInvalidRefresh
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}

	if user.RefreshToken == nil || *user.RefreshToken != incomingToken {
		return nil, ErrStaleRefresh
	}

	return s.issueTokenPair(user)
}

// GetCurrentUser 根据用户 ID 获取用户信息
func (s *AuthService) GetCurrentUser(userID int64) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return toUserInfo(user), nil
}

// ChangePassword 修改密码（校验原密码）
func (s *AuthService) ChangePassword(userID int64, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if !utils.VerifyPassword(req.OldPassword, user.Password) {
		return ErrWrongPassword
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(userID, hashedPassword)
}

// UpdateAccount 更新账号资料（显示名称与邮箱）
func (s *AuthService) UpdateAccount(userID int64, req *dto.UpdateAccountRequest) (*dto.UserInfo, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if other, err := s.userRepo.GetByLogin(email); err == nil && other.ID != userID {
		return nil, ErrUserExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user, err := s.userRepo.Update(userID, map[string]interface{}{
		"full_name": req.FullName,
		"email":     email,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return toUserInfo(user), nil
}

// UpdateAvatar 更换头像，旧对象删除交给补偿清理
func (s *AuthService) UpdateAvatar(userID int64, avatar *MediaFile) (*dto.UserInfo, error) {
	return s.updateImage(userID, "avatars", "avatar", avatar)
}

// UpdateCoverImage 更换封面图
func (s *AuthService) UpdateCoverImage(userID int64, cover *MediaFile) (*dto.UserInfo, error) {
	return s.updateImage(userID, "covers", "cover_image", cover)
}

func (s *AuthService) updateImage(userID int64, prefix, column string, file *MediaFile) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	oldURL := user.Avatar
	if column == "cover_image" {
		oldURL = user.CoverImage
	}

	newURL, err := uploadMedia(prefix, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMediaUploadFailed, err)
	}

	updated, err := s.userRepo.Update(userID, map[string]interface{}{column: newURL})
	if err != nil {
		cleanupMedia("update-image-store-failed", newURL)
		return nil, err
	}

	cleanupMedia("replaced-image", oldURL)

	return toUserInfo(updated), nil
}

// issueTokenPair 签发 (访问, 刷新) 令牌对并持久化刷新令牌
func (s *AuthService) issueTokenPair(user *model.User) (*dto.TokenData, error) {
	accessToken, err := utils.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateRefreshToken(user.ID, &refreshToken); err != nil {
		return nil, err
	}

	return &dto.TokenData{
		User:         *toUserInfo(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// uploadMedia 上传媒体文件，对象名用 UUID 生成避免冲突
func uploadMedia(prefix string, file *MediaFile) (string, error) {
	ext := strings.ToLower(file.Ext)
	objectName := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), ext)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	return infraMinio.UploadFile(ctx, objectName, file.Reader, file.Size, file.ContentType)
}

func toUserInfo(user *model.User) *dto.UserInfo {
	return &dto.UserInfo{
		ID:         user.ID,
		UserName:   user.UserName,
		Email:      user.Email,
		FullName:   user.FullName,
		Avatar:     user.Avatar,
		CoverImage: user.CoverImage,
		CreatedAt:  user.CreatedAt,
	}
}
