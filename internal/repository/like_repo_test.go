package repository

import (
	"testing"

	"tubehub/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeRepository_TryInsert(t *testing.T) {
	t.Run("首次点赞实际插入", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLikeRepository(db)

		mock.ExpectQuery(`INSERT INTO "likes"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

		inserted, err := repo.TryInsert(10, model.LikeTargetVideo, 7)
		require.NoError(t, err)
		assert.True(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("重复点赞冲突静默跳过", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLikeRepository(db)

		// ON CONFLICT DO NOTHING：冲突时无行返回
		mock.ExpectQuery(`INSERT INTO "likes"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		inserted, err := repo.TryInsert(10, model.LikeTargetVideo, 7)
		require.NoError(t, err)
		assert.False(t, inserted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLikeRepository_Delete(t *testing.T) {
	t.Run("删除已有点赞", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLikeRepository(db)

		mock.ExpectExec(`DELETE FROM "likes"`).
			WithArgs(int64(10), model.LikeTargetVideo, int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		deleted, err := repo.Delete(10, model.LikeTargetVideo, 7)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("点赞不存在时无行受影响", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewLikeRepository(db)

		mock.ExpectExec(`DELETE FROM "likes"`).
			WithArgs(int64(10), model.LikeTargetVideo, int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		deleted, err := repo.Delete(10, model.LikeTargetVideo, 7)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestLikeRepository_CountByTarget(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewLikeRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "likes"`).
		WithArgs(model.LikeTargetComment, int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(5)))

	count, err := repo.CountByTarget(model.LikeTargetComment, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}
