package service

import (
	"testing"

	"tubehub/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSubscriptionService(db *gorm.DB) *SubscriptionService {
	return NewSubscriptionService(
		repository.NewSubscriptionRepository(db),
		repository.NewUserRepository(db),
	)
}

func expectUserExists(mock sqlmock.Sqlmock, userID int64) {
	mock.ExpectQuery(`SELECT .* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name"}).AddRow(userID, "channel"))
}

func TestSubscriptionService_Toggle(t *testing.T) {
	t.Run("不能订阅自己", func(t *testing.T) {
		db, _ := newServiceTestDB(t)
		svc := newSubscriptionService(db)

		_, err := svc.Toggle(1, 1)
		assert.ErrorIs(t, err, ErrSelfSubscribe)
	})

	t.Run("首次切换为订阅", func(t *testing.T) {
		db, mock := newServiceTestDB(t)
		svc := newSubscriptionService(db)

		expectUserExists(mock, 2)
		mock.ExpectQuery(`INSERT INTO "subscriptions"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "subscriptions"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

		data, err := svc.Toggle(1, 2)
		require.NoError(t, err)
		assert.True(t, data.Subscribed)
		assert.Equal(t, int64(1), data.SubscriberCount)
	})

	t.Run("再次切换为退订", func(t *testing.T) {
		db, mock := newServiceTestDB(t)
		svc := newSubscriptionService(db)

		expectUserExists(mock, 2)
		mock.ExpectQuery(`INSERT INTO "subscriptions"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectExec(`DELETE FROM "subscriptions"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "subscriptions"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

		data, err := svc.Toggle(1, 2)
		require.NoError(t, err)
		assert.False(t, data.Subscribed)
		assert.Equal(t, int64(0), data.SubscriberCount)
	})

	t.Run("频道不存在", func(t *testing.T) {
		db, mock := newServiceTestDB(t)
		svc := newSubscriptionService(db)

		mock.ExpectQuery(`SELECT .* FROM "users"`).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := svc.Toggle(1, 404)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
