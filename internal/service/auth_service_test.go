package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tubehub/internal/api/dto"
	"tubehub/internal/config"
	"tubehub/internal/repository"
	"tubehub/pkg/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func loadAuthTestConfig(t *testing.T) {
	t.Helper()

	yaml := `
app:
  name: tubehub-test
  mode: test
jwt:
  access_secret: test-access-secret
  refresh_secret: test-refresh-secret
  access_expire_minutes: 30
  refresh_expire_days: 10
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	_, err := config.Load(path)
	require.NoError(t, err)
}

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db))
}

func expectUserRow(mock sqlmock.Sqlmock, userID int64, refreshToken interface{}) {
	now := time.Now()
	mock.ExpectQuery(`SELECT .* FROM "users"`).
		WithArgs(userID, 1).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_name", "email", "full_name", "password",
				"avatar", "cover_image", "refresh_token", "created_at", "updated_at"}).
			AddRow(userID, "gopher", "gopher@example.com", "Gopher", "hash",
				"http://m/a.png", "", refreshToken, now, now))
}

// 刷新令牌轮换：旧令牌换发新凭据对并覆写单槽
func TestAuthService_Refresh(t *testing.T) {
	t.Run("持久化令牌等值时换发成功", func(t *testing.T) {
		loadAuthTestConfig(t)
		db, mock := newServiceTestDB(t)
		svc := newAuthService(db)

		token, err := utils.GenerateRefreshToken(7)
		require.NoError(t, err)

		expectUserRow(mock, 7, token)
		mock.ExpectExec(`UPDATE "users" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		data, err := svc.Refresh(token)
		require.NoError(t, err)
		assert.NotEmpty(t, data.AccessToken)
		assert.NotEmpty(t, data.RefreshToken)
		assert.Equal(t, int64(7), data.User.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("已被轮换覆写的旧令牌视为重放", func(t *testing.T) {
		loadAuthTestConfig(t)
		db, mock := newServiceTestDB(t)
		svc := newAuthService(db)

		superseded, err := utils.GenerateRefreshToken(7)
		require.NoError(t, err)

		// 单槽已被后一次签发覆写，旧令牌等值校验失败
		expectUserRow(mock, 7, "rotated-to-a-newer-token")

		_, err = svc.Refresh(superseded)
		assert.ErrorIs(t, err, ErrStaleRefresh)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("登出清空单槽后拒绝刷新", func(t *testing.T) {
		loadAuthTestConfig(t)
		db, mock := newServiceTestDB(t)
		svc := newAuthService(db)

		token, err := utils.GenerateRefreshToken(7)
		require.NoError(t, err)

		expectUserRow(mock, 7, nil)

		_, err = svc.Refresh(token)
		assert.ErrorIs(t, err, ErrStaleRefresh)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("缺少令牌", func(t *testing.T) {
		loadAuthTestConfig(t)
		db, _ := newServiceTestDB(t)
		svc := newAuthService(db)

		_, err := svc.Refresh("")
		assert.ErrorIs(t, err, ErrMissingRefresh)
	})

	t.Run("访问令牌不能用于刷新", func(t *testing.T) {
		loadAuthTestConfig(t)
		db, _ := newServiceTestDB(t)
		svc := newAuthService(db)

		accessToken, err := utils.GenerateAccessToken(7)
		require.NoError(t, err)

		_, err = svc.Refresh(accessToken)
		assert.ErrorIs(t, err, ErrInvalidRefresh)
	})

	t.Run("伪造令牌", func(t *testing.T) {
		loadAuthTestConfig(t)
		db, _ := newServiceTestDB(t)
		svc := newAuthService(db)

		_, err := svc.Refresh("not-a-valid-token")
		assert.ErrorIs(t, err, ErrInvalidRefresh)
	})
}

// 注册冲突在任何媒体上传之前返回
func TestAuthService_RegisterConflictBeforeUpload(t *testing.T) {
	loadAuthTestConfig(t)
	db, mock := newServiceTestDB(t)
	svc := newAuthService(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WithArgs("gopher", "gopher@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	// 媒体存储未初始化：若冲突检查不先行，上传会直接失败
	_, err := svc.Register(&dto.RegisterRequest{
		UserName: "Gopher",
		Email:    "GOPHER@example.com",
		FullName: "Gopher",
		Password: "s3cret-pass",
	}, &MediaFile{Ext: ".png"}, nil)

	assert.ErrorIs(t, err, ErrUserExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 并发改邮箱越过预检查时，唯一索引冲突映射为已占用
func TestAuthService_UpdateAccountDuplicateEmail(t *testing.T) {
	loadAuthTestConfig(t)
	db, mock := newServiceTestDB(t)
	svc := newAuthService(db)

	// 预检查时邮箱尚未被占用
	mock.ExpectQuery(`SELECT .* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnError(gorm.ErrDuplicatedKey)

	_, err := svc.UpdateAccount(7, &dto.UpdateAccountRequest{
		FullName: "Gopher",
		Email:    "taken@example.com",
	})

	assert.ErrorIs(t, err, ErrUserExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
