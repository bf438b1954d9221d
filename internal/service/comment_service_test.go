package service

import (
	"testing"
	"time"

	"tubehub/internal/api/dto"
	"tubehub/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCommentService(db *gorm.DB) *CommentService {
	return NewCommentService(
		repository.NewCommentRepository(db),
		repository.NewVideoRepository(db),
		repository.NewLikeRepository(db),
	)
}

// 创建响应与列表同构：新评论直接携带作者信息
func TestCommentService_CreateEmbedsOwner(t *testing.T) {
	db, mock := newServiceTestDB(t)
	svc := newCommentService(db)
	now := time.Now()

	expectVideoExists(mock, 7)
	mock.ExpectQuery(`INSERT INTO "comments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	// 回读带作者的评论记录
	mock.ExpectQuery(`SELECT .* FROM "comments"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "video_id", "owner_id", "content", "created_at", "updated_at"}).
			AddRow(int64(3), int64(7), int64(10), "不错的视频", now, now))
	mock.ExpectQuery(`SELECT .* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_name", "full_name", "avatar"}).
			AddRow(int64(10), "gopher", "Go Pher", "a.png"))

	info, err := svc.Create(7, 10, &dto.CommentCreateRequest{Content: "不错的视频"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.ID)
	require.NotNil(t, info.Owner)
	assert.Equal(t, int64(10), info.Owner.ID)
	assert.Equal(t, "gopher", info.Owner.UserName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
