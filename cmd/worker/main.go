package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tubehub/internal/config"
	infraKafka "tubehub/internal/infra/kafka"
	infraMinio "tubehub/internal/infra/minio"
	"tubehub/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := infraMinio.Init(&cfg.MinIO); err != nil {
		logger.Fatal("Failed to init minio", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	topic := cfg.Kafka.Topics["media_cleanup"]
	groupID := "tubehub-media-cleanup"

	logger.Info("Media cleanup worker started",
		zap.String("topic", topic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	// 同步删除失败的对象由这里兜底重试。删不掉的任务不确认吞掉，
	// 只记录错误，等下一条同对象任务或人工介入
	infraKafka.StartCleanupConsumer(ctx, cfg.Kafka.Brokers, topic, groupID, handleCleanup)
}

func handleCleanup(ctx context.Context, task *infraKafka.CleanupTask) error {
	logger.Info("Processing media cleanup task",
		zap.Strings("objects", task.Objects),
		zap.String("reason", task.Reason),
	)

	deleteCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var lastErr error
	for _, obj := range task.Objects {
		if err := infraMinio.DeleteFile(deleteCtx, obj); err != nil {
			logger.Error("Failed to delete media object",
				zap.String("object", obj),
				zap.Error(err),
			)
			lastErr = err
			continue
		}
		logger.Info("Media object deleted", zap.String("object", obj))
	}

	return lastErr
}
