package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionRepository_TryInsert(t *testing.T) {
	t.Run("新订阅边实际插入", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSubscriptionRepository(db)

		mock.ExpectQuery(`INSERT INTO "subscriptions"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

		inserted, err := repo.TryInsert(1, 2)
		require.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("重复订阅冲突静默跳过", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewSubscriptionRepository(db)

		mock.ExpectQuery(`INSERT INTO "subscriptions"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		inserted, err := repo.TryInsert(1, 2)
		require.NoError(t, err)
		assert.False(t, inserted)
	})
}

func TestSubscriptionRepository_Delete(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSubscriptionRepository(db)

	mock.ExpectExec(`DELETE FROM "subscriptions"`).
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.Delete(1, 2)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestSubscriptionRepository_CountSubscribers(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSubscriptionRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "subscriptions"`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))

	count, err := repo.CountSubscribers(2)
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
}
