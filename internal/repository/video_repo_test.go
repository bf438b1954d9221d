package repository

import (
	"testing"
	"time"

	"tubehub/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoRepository_List(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewVideoRepository(db)

	now := time.Now()
	search := "go"

	mock.ExpectQuery(`SELECT count\(\*\) FROM "videos" JOIN users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))

	mock.ExpectQuery(`SELECT .* FROM "videos" JOIN users`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "owner_id", "title", "description", "video_file", "thumbnail", "duration", "views", "is_published", "created_at", "updated_at"}).
			AddRow(int64(2), int64(5), "Go 并发", "goroutine", "u1", "t1", 120, int64(9), true, now, now).
			AddRow(int64(1), int64(5), "Go 入门", "hello", "u2", "t2", 60, int64(3), true, now, now))

	// Preload Owner
	mock.ExpectQuery(`SELECT .* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name", "full_name", "avatar"}).
			AddRow(int64(5), "gopher", "Go Pher", "a.png"))

	videos, total, err := repo.List(0, 10, ListFilter{
		PublishedOnly: true,
		Search:        &search,
		SortBy:        "created_at",
		SortDesc:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, videos, 2)
	assert.Equal(t, "Go 并发", videos[0].Title)
	assert.Equal(t, "gopher", videos[0].Owner.UserName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_List_UnknownSortKeyFallsBack(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewVideoRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "videos" JOIN users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

	// 非白名单排序键回落到 created_at，不拼进 SQL
	mock.ExpectQuery(`ORDER BY videos\.created_at ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, total, err := repo.List(0, 10, ListFilter{SortBy: "views; DROP TABLE videos"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_IncrementViews(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewVideoRepository(db)

	mock.ExpectExec(`UPDATE "videos" SET "views"=views \+ 1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.IncrementViews(7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoRepository_GetChannelStats(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewVideoRepository(db)

	mock.ExpectQuery(`SELECT(?s).*FROM videos v(?s).*LEFT JOIN`).
		WithArgs(model.LikeTargetVideo, int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"total_views", "total_videos", "total_likes"}).
			AddRow(int64(1000), int64(12), int64(88)))

	stats, err := repo.GetChannelStats(5)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), stats.TotalViews)
	assert.Equal(t, int64(12), stats.TotalVideos)
	assert.Equal(t, int64(88), stats.TotalLikes)
}
