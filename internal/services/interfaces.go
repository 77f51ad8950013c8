// Package services 实现视图物化用例：阶段选取、条目补全与视图装配。
package services

import (
	"context"

	"github.com/DogukanTopcu/feed-ranking-viewer/internal/models/po"
	"github.com/DogukanTopcu/feed-ranking-viewer/internal/models/vo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SampleRepository 抽象候选池仓储访问能力。
type SampleRepository interface {
	Get(ctx context.Context, id primitive.ObjectID) (*po.FeedSample, error)
	ListRecent(ctx context.Context, limit int64) ([]*po.FeedSample, error)
}

// RankedRepository 抽象排序结果仓储访问能力。
type RankedRepository interface {
	LatestBySample(ctx context.Context, sampleID primitive.ObjectID) (*po.RankedFeed, error)
}

// RerankedRepository 抽象重排结果与变体目录的仓储访问能力。
type RerankedRepository interface {
	GetByCols(ctx context.Context, sampleID primitive.ObjectID, nCols int32) (*po.RerankedFeed, error)
	ListCols(ctx context.Context, sampleID primitive.ObjectID) ([]int32, error)
}

// ImageFinder 抽象图片内容记录的查询能力。
type ImageFinder interface {
	FindByDocID(ctx context.Context, docID string) (*po.ImageRecord, error)
}

// UserFinder 抽象用户资料的批量查询能力。
type UserFinder interface {
	ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*po.UserRecord, error)
}

// ImageResolverAPI 抽象单个图片标识的解析能力，便于测试替换。
type ImageResolverAPI interface {
	Resolve(ctx context.Context, imageID string) vo.ResolvedImage
}

// EnricherAPI 抽象条目补全能力。
type EnricherAPI interface {
	Enrich(ctx context.Context, items []po.FeedItem) []vo.FeedItem
}

// ViewServiceInterface 抽象视图物化用例，便于测试替换。
type ViewServiceInterface interface {
	SampleView(ctx context.Context, feedID string) (*vo.SampleView, error)
	RankedView(ctx context.Context, feedID string) (*vo.RankedView, error)
	RerankedView(ctx context.Context, feedID string, nCols int32) (*vo.RerankedView, error)
	ListFeeds(ctx context.Context, limit int64) ([]vo.FeedSummary, error)
}
