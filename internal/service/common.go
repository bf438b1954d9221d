package service

import (
	"context"
	"time"

	"tubehub/internal/api/dto"
	infraKafka "tubehub/internal/infra/kafka"
	infraMinio "tubehub/internal/infra/minio"
	"tubehub/internal/model"
	"tubehub/pkg/logger"

	"go.uber.org/zap"
)

func toOwnerBrief(user *model.User) *dto.OwnerBrief {
	if user == nil || user.ID == 0 {
		return nil
	}
	return &dto.OwnerBrief{
		ID:       user.ID,
		UserName: user.UserName,
		FullName: user.FullName,
		Avatar:   user.Avatar,
	}
}

func toOwnerBriefs(users []model.User) []dto.OwnerBrief {
	briefs := make([]dto.OwnerBrief, 0, len(users))
	for i := range users {
		if b := toOwnerBrief(&users[i]); b != nil {
			briefs = append(briefs, *b)
		}
	}
	return briefs
}

// cleanupMedia 补偿删除媒体对象：先同步删，删不掉的挂到 Kafka
// 清理队列由 worker 重试，避免存储里留下孤儿对象
func cleanupMedia(reason string, urls ...string) {
	objects := make([]string, 0, len(urls))
	for _, u := range urls {
		if u == "" {
			continue
		}
		if name := infraMinio.ObjectNameFromURL(u); name != "" {
			objects = append(objects, name)
		}
	}
	if len(objects) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	failed := make([]string, 0, len(objects))
	for _, obj := range objects {
		if err := infraMinio.DeleteFile(ctx, obj); err != nil {
			logger.Warn("Media delete failed, queueing cleanup task",
				zap.String("object", obj), zap.Error(err))
			failed = append(failed, obj)
		}
	}

	if len(failed) > 0 {
		task := &infraKafka.CleanupTask{Objects: failed, Reason: reason}
		if err := infraKafka.SendCleanupTask(ctx, task); err != nil {
			logger.Error("Failed to queue media cleanup task",
				zap.Strings("objects", failed), zap.Error(err))
		}
	}
}
