package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepository_GetByLogin(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT .* FROM "users" WHERE user_name = \$1 OR email = \$2`).
		WithArgs("gopher", "gopher", 1).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "user_name", "email", "full_name", "password", "created_at"}).
			AddRow(int64(1), "gopher", "gopher@example.com", "Go Pher", "hash", now))

	user, err := repo.GetByLogin("gopher")
	require.NoError(t, err)
	assert.Equal(t, "gopher@example.com", user.Email)
}

func TestUserRepository_ExistsByUserNameOrEmail(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WithArgs("gopher", "gopher@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

	exists, err := repo.ExistsByUserNameOrEmail("gopher", "gopher@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepository_UpdateRefreshToken(t *testing.T) {
	t.Run("覆写单槽", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewUserRepository(db)

		token := "new-refresh-token"
		mock.ExpectExec(`UPDATE "users" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateRefreshToken(1, &token))
	})

	t.Run("登出清空", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(`UPDATE "users" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateRefreshToken(1, nil))
	})

	t.Run("用户不存在", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewUserRepository(db)

		mock.ExpectExec(`UPDATE "users" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateRefreshToken(999, nil)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
