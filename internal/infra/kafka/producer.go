package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tubehub/internal/config"
	"tubehub/pkg/logger"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var producer *kafka.Writer

// CleanupTask 媒体清理任务消息体。
// 两个来源：入库失败后的补偿删除（上传已成功但记录没写进去），
// 以及删除视频时同步删除失败的媒体对象。worker 消费后重试删除
type CleanupTask struct {
	Objects []string `json:"objects"`
	Reason  string   `json:"reason"`
}

// InitProducer 初始化 Kafka 生产者
func InitProducer(cfg *config.KafkaConfig) error {
	producer = &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
	)

	return nil
}

// SendCleanupTask 发送媒体清理任务到 Kafka
func SendCleanupTask(ctx context.Context, task *CleanupTask) error {
	topic := config.GetKafka().Topics["media_cleanup"]

	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal cleanup task: %w", err)
	}

	msg := kafka.Message{
		Topic: topic,
		Key:   []byte(task.Reason),
		Value: payload,
	}

	if err := producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send cleanup task: %w", err)
	}

	logger.Info("Media cleanup task sent",
		zap.Strings("objects", task.Objects),
		zap.String("reason", task.Reason),
	)

	return nil
}

// CloseProducer 关闭生产者
func CloseProducer() error {
	if producer == nil {
		return nil
	}
	logger.Info("Kafka producer closed")
	return producer.Close()
}
