package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/DogukanTopcu/feed-ranking-viewer/internal/models/po"
	"github.com/go-kratos/kratos/v2/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FeedSampleRepository 访问 feed_samples 集合。
type FeedSampleRepository struct {
	db  *mongo.Database
	log *log.Helper
}

// NewFeedSampleRepository 构造仓储实例。
func NewFeedSampleRepository(db *mongo.Database, logger log.Logger) *FeedSampleRepository {
	return &FeedSampleRepository{
		db:  db,
		log: log.NewHelper(logger),
	}
}

// Get 按 _id 读取候选池，不存在时返回 ErrNotFound。
func (r *FeedSampleRepository) Get(ctx context.Context, id primitive.ObjectID) (*po.FeedSample, error) {
	var sample po.FeedSample
	err := r.db.Collection(feedSamplesCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&sample)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get feed sample: %w", err)
	}
	return &sample, nil
}

// ListRecent 按 updated_at 倒序返回候选池概要，仅投影列表所需字段。
func (r *FeedSampleRepository) ListRecent(ctx context.Context, limit int64) ([]*po.FeedSample, error) {
	if limit <= 0 {
		return nil, nil
	}
	opts := options.Find().
		SetProjection(bson.M{"_id": 1, "user_id": 1, "item_count": 1, "updated_at": 1}).
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.db.Collection(feedSamplesCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list feed samples: %w", err)
	}
	var samples []*po.FeedSample
	if err := cursor.All(ctx, &samples); err != nil {
		return nil, fmt.Errorf("decode feed samples: %w", err)
	}
	return samples, nil
}
