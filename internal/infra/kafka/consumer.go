package kafka

import (
	"context"
	"encoding/json"
	"time"

	"tubehub/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// CleanupHandler 处理媒体清理任务的回调函数
type CleanupHandler func(ctx context.Context, task *CleanupTask) error

// StartCleanupConsumer 启动媒体清理消费者（阻塞，需在 goroutine 中运行）
// ctx 取消后会自动停止
func StartCleanupConsumer(ctx context.Context, brokers []string, topic, groupID string, handler CleanupHandler) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.FirstOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close kafka consumer", zap.Error(err))
		}
		logger.Info("Kafka cleanup consumer stopped")
	}()

	logger.Info("Kafka cleanup consumer started",
		zap.String("topic", topic),
		zap.String("group", groupID),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to read kafka message", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		var task CleanupTask
		if err := json.Unmarshal(msg.Value, &task); err != nil {
			logger.Error("Failed to unmarshal cleanup task",
				zap.Error(err),
				zap.ByteString("value", msg.Value),
			)
			continue
		}

		if err := handler(ctx, &task); err != nil {
			logger.Error("Failed to handle cleanup task",
				zap.Strings("objects", task.Objects),
				zap.Error(err),
			)
		}
	}
}
