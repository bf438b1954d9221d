package service

import (
	"testing"
	"time"

	"tubehub/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newServiceTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func newLikeService(db *gorm.DB) *LikeService {
	return NewLikeService(
		repository.NewLikeRepository(db),
		repository.NewVideoRepository(db),
		repository.NewCommentRepository(db),
		repository.NewTweetRepository(db),
	)
}

func expectVideoExists(mock sqlmock.Sqlmock, videoID int64) {
	now := time.Now()
	mock.ExpectQuery(`SELECT .* FROM "videos"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "owner_id", "title", "is_published", "created_at", "updated_at"}).
			AddRow(videoID, int64(5), "demo", true, now, now))
}

// 双切换回到原始状态：第一次点赞，第二次取消
func TestLikeService_ToggleVideoLike(t *testing.T) {
	t.Run("首次切换为点赞", func(t *testing.T) {
		db, mock := newServiceTestDB(t)
		svc := newLikeService(db)

		expectVideoExists(mock, 7)
		mock.ExpectQuery(`INSERT INTO "likes"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "likes"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))

		data, err := svc.ToggleVideoLike(10, 7)
		require.NoError(t, err)
		assert.True(t, data.Liked)
		assert.Equal(t, int64(1), data.LikeCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("再次切换为取消点赞", func(t *testing.T) {
		db, mock := newServiceTestDB(t)
		svc := newLikeService(db)

		expectVideoExists(mock, 7)
		// 唯一索引冲突：插入为空，转为删除
		mock.ExpectQuery(`INSERT INTO "likes"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectExec(`DELETE FROM "likes"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "likes"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

		data, err := svc.ToggleVideoLike(10, 7)
		require.NoError(t, err)
		assert.False(t, data.Liked)
		assert.Equal(t, int64(0), data.LikeCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("目标视频不存在", func(t *testing.T) {
		db, mock := newServiceTestDB(t)
		svc := newLikeService(db)

		mock.ExpectQuery(`SELECT .* FROM "videos"`).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := svc.ToggleVideoLike(10, 404)
		assert.ErrorIs(t, err, ErrVideoNotFound)
	})
}
