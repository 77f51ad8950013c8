// Package po 定义由外部排序流水线写入、本服务只读的持久化结构体。
package po

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeedItem 表示流水线各阶段共享的单条 Feed 条目。
// Metadata 为流水线附带的任意键值，本层只透传、不解析。
type FeedItem struct {
	ImageID    string  `bson:"image_id"`
	ImageURL   *string `bson:"image_url,omitempty"`
	SourceType string  `bson:"source_type"`
	Score      float64 `bson:"score"`
	IsSeen     *bool   `bson:"is_seen,omitempty"`
	Metadata   bson.M  `bson:"metadata,omitempty"`
	ImageColor *string `bson:"image_color,omitempty"`
}

// FeedSample 表示某用户未排序的候选池。
type FeedSample struct {
	ID        primitive.ObjectID `bson:"_id"`
	UserID    string             `bson:"user_id"`
	FeedItems []FeedItem         `bson:"feed_items"`
	ItemCount int32              `bson:"item_count"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// RankVariables 记录产出某次排序所用的打分权重。
type RankVariables struct {
	Weights map[string]float64 `bson:"weights,omitempty"`
}

// RankedFeed 表示排序算法对某个候选池的一次输出。
// 同一候选池可能存在多条记录，created_at 最新者为准。
type RankedFeed struct {
	ID           primitive.ObjectID `bson:"_id"`
	UserID       string             `bson:"user_id"`
	FeedSampleID primitive.ObjectID `bson:"feed_sample_id"`
	FeedItems    []FeedItem         `bson:"feed_items"`
	Details      map[string]float64 `bson:"details"`
	Variables    RankVariables      `bson:"variables"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// RerankVariables 记录重排布局参数：高度上下界与簇序列。
type RerankVariables struct {
	HMin            float64 `bson:"H_MIN"`
	HMax            float64 `bson:"H_MAX"`
	ClusterSequence []int32 `bson:"CLUSTER_SEQUENCE"`
}

// RerankedFeed 表示按某个列数布局重排后的 Feed。
// 同一候选池按 nCols 各存一条，(feed_sample_id, nCols) 唯一定位。
type RerankedFeed struct {
	ID           primitive.ObjectID `bson:"_id"`
	UserID       string             `bson:"user_id"`
	FeedSampleID primitive.ObjectID `bson:"feed_sample_id"`
	RankedFeedID primitive.ObjectID `bson:"ranked_feed_id"`
	NCols        int32              `bson:"nCols"`
	Variables    RerankVariables    `bson:"variables"`
	Details      map[string]float64 `bson:"details"`
	FeedItems    []FeedItem         `bson:"feed_items"`
}

// ImageRecord 表示图片内容记录，读取时仅投影展示所需字段。
type ImageRecord struct {
	ID                  primitive.ObjectID `bson:"_id"`
	DocID               string             `bson:"doc_id"`
	ImagesPaths         []string           `bson:"images_paths"`
	ColorRepresentation string             `bson:"color_representation"`
}

// UserProfile 表示用户展示资料。
type UserProfile struct {
	DisplayName string `bson:"display_name"`
	AvatarURL   string `bson:"avatar_url"`
	Bio         string `bson:"bio"`
}

// UserRecord 表示 Feed 归属用户，读取时仅投影 handle 与资料。
type UserRecord struct {
	ID      primitive.ObjectID `bson:"_id"`
	Handle  string             `bson:"handle"`
	Profile UserProfile        `bson:"profile"`
}
