package elasticsearch

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"tubehub/internal/config"
	"tubehub/pkg/logger"

	"go.uber.org/zap"
)

// VideosIndexName 返回 videos 索引名（可配置，默认 videos）
func VideosIndexName() string {
	name := config.GetElasticsearch().Index["videos"]
	if name == "" {
		name = "videos"
	}
	return name
}

// videosIndexMapping videos 索引 mapping
const videosIndexMapping = `{
	"settings": {
		"number_of_shards": 1,
		"number_of_replicas": 0
	},
	"mappings": {
		"properties": {
			"id": {"type": "long"},
			"owner_id": {"type": "long"},
			"owner_name": {"type": "keyword"},
			"title": {
				"type": "text",
				"fields": {"keyword": {"type": "keyword", "ignore_above": 200}}
			},
			"description": {"type": "text"},
			"thumbnail": {"type": "keyword", "index": false},
			"duration": {"type": "integer"},
			"views": {"type": "long"},
			"created_at": {"type": "date", "format": "strict_date_optional_time||epoch_millis"}
		}
	}
}`

// EnsureVideosIndex 确保 videos 索引存在，不存在则创建
func EnsureVideosIndex(ctx context.Context) error {
	indexName := VideosIndexName()

	exists, err := IndicesExists(ctx, indexName)
	if err != nil {
		return fmt.Errorf("check index exists: %w", err)
	}
	if exists {
		logger.Info("Elasticsearch videos index already exists", zap.String("index", indexName))
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	resp, err := IndicesCreate(ctx, indexName, bytes.NewReader([]byte(videosIndexMapping)))
	if err != nil {
		return fmt.Errorf("create videos index: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("create videos index failed: %s", resp.String())
	}

	logger.Info("Elasticsearch videos index created", zap.String("index", indexName))
	return nil
}
