// Package repositories 封装对文档库各集合的只读访问。
// 所有集合均由外部流水线写入，本层不做任何变更。
package repositories

import (
	"errors"

	"github.com/google/wire"
)

// ErrNotFound 表示目标文档不存在。
var ErrNotFound = errors.New("document not found")

// 集合名称与外部流水线的落库约定保持一致。
const (
	feedSamplesCollection   = "feed_samples"
	rankedFeedsCollection   = "ranked_feeds"
	rerankedFeedsCollection = "reranked_feeds"
	imagesCollection        = "images"
	usersCollection         = "users"
)

// ProviderSet collects repository constructors for Wire DI.
var ProviderSet = wire.NewSet(
	NewFeedSampleRepository,
	NewRankedFeedRepository,
	NewRerankedFeedRepository,
	NewImageRepository,
	NewUserRepository,
)
