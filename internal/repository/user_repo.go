package repository

import (
	"tubehub/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID 根据 ID 查询用户
func (r *UserRepository) GetByID(id int64) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUserName 根据用户名查询用户
func (r *UserRepository) GetByUserName(userName string) (*model.User, error) {
	var user model.User
	err := r.db.Where("user_name = ?", userName).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByLogin 根据用户名或邮箱查询用户（登录入口）
func (r *UserRepository) GetByLogin(login string) (*model.User, error) {
	var user model.User
	err := r.db.Where("user_name = ? OR email = ?", login, login).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUserNameOrEmail 检查用户名或邮箱是否已被占用
func (r *UserRepository) ExistsByUserNameOrEmail(userName, email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).
		Where("user_name = ? OR email = ?", userName, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create 创建用户
func (r *UserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

// Update 更新用户字段
func (r *UserRepository) Update(id int64, updates map[string]interface{}) (*model.User, error) {
	result := r.db.Model(&model.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

// UpdateRefreshToken 覆写刷新令牌单槽（nil 表示登出清空，
// 旧令牌因等值校验失败而永久失效）
func (r *UserRepository) UpdateRefreshToken(id int64, token *string) error {
	result := r.db.Model(&model.User{}).Where("id = ?", id).
		Update("refresh_token", token)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdatePassword 更新密码哈希
func (r *UserRepository) UpdatePassword(id int64, hashedPassword string) error {
	result := r.db.Model(&model.User{}).Where("id = ?", id).
		Update("password", hashedPassword)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
