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

// RankedFeedRepository 访问 ranked_feeds 集合。
type RankedFeedRepository struct {
	db  *mongo.Database
	log *log.Helper
}

// NewRankedFeedRepository 构造仓储实例。
func NewRankedFeedRepository(db *mongo.Database, logger log.Logger) *RankedFeedRepository {
	return &RankedFeedRepository{
		db:  db,
		log: log.NewHelper(logger),
	}
}

// LatestBySample 返回引用该候选池且 created_at 最新的排序记录。
// created_at 相同时按 _id 倒序取定，保证选取结果确定。
func (r *RankedFeedRepository) LatestBySample(ctx context.Context, sampleID primitive.ObjectID) (*po.RankedFeed, error) {
	opts := options.FindOne().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	var ranked po.RankedFeed
	err := r.db.Collection(rankedFeedsCollection).
		FindOne(ctx, bson.M{"feed_sample_id": sampleID}, opts).
		Decode(&ranked)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get latest ranked feed: %w", err)
	}
	return &ranked, nil
}
