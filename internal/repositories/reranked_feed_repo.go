package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/DogukanTopcu/feed-ranking-viewer/internal/models/po"
	"github.com/DogukanTopcu/feed-ranking-viewer/internal/repositories/mappers"
	"github.com/go-kratos/kratos/v2/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RerankedFeedRepository 访问 reranked_feeds 集合。
type RerankedFeedRepository struct {
	db  *mongo.Database
	log *log.Helper
}

// NewRerankedFeedRepository 构造仓储实例。
func NewRerankedFeedRepository(db *mongo.Database, logger log.Logger) *RerankedFeedRepository {
	return &RerankedFeedRepository{
		db:  db,
		log: log.NewHelper(logger),
	}
}

// GetByCols 按 (feed_sample_id, nCols) 精确读取重排记录。
func (r *RerankedFeedRepository) GetByCols(ctx context.Context, sampleID primitive.ObjectID, nCols int32) (*po.RerankedFeed, error) {
	filter := bson.M{"feed_sample_id": sampleID, "nCols": nCols}
	var reranked po.RerankedFeed
	err := r.db.Collection(rerankedFeedsCollection).FindOne(ctx, filter).Decode(&reranked)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get reranked feed: %w", err)
	}
	return &reranked, nil
}

// ListCols 返回该候选池现存的列数变体，升序且去重。
func (r *RerankedFeedRepository) ListCols(ctx context.Context, sampleID primitive.ObjectID) ([]int32, error) {
	values, err := r.db.Collection(rerankedFeedsCollection).
		Distinct(ctx, "nCols", bson.M{"feed_sample_id": sampleID})
	if err != nil {
		return nil, fmt.Errorf("list reranked cols: %w", err)
	}
	cols, err := mappers.ToSortedInt32s(values)
	if err != nil {
		return nil, fmt.Errorf("list reranked cols: %w", err)
	}
	return cols, nil
}
