package services

import (
	"context"

	"github.com/DogukanTopcu/feed-ranking-viewer/internal/models/po"
	"github.com/DogukanTopcu/feed-ranking-viewer/internal/models/vo"
	"github.com/go-kratos/kratos/v2/log"
	"golang.org/x/sync/errgroup"
)

const defaultEnrichConcurrency = 8

// ItemEnricher 并发补全条目的展示地址与颜色。
// 输出与输入等长且顺序一致，单条解析失败不影响其余条目。
type ItemEnricher struct {
	resolver    ImageResolverAPI
	concurrency int
	log         *log.Helper
}

// NewItemEnricher 构造 ItemEnricher。
func NewItemEnricher(resolver ImageResolverAPI, logger log.Logger) *ItemEnricher {
	return &ItemEnricher{
		resolver:    resolver,
		concurrency: defaultEnrichConcurrency,
		log:         log.NewHelper(logger),
	}
}

// Enrich 对每个条目独立补全图片信息。
// 已带 image_url 的条目不再触发解析；结果按下标写回以保持顺序。
func (e *ItemEnricher) Enrich(ctx context.Context, items []po.FeedItem) []vo.FeedItem {
	enriched := make([]vo.FeedItem, len(items))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.concurrency)
	for i, item := range items {
		i, item := i, item
		group.Go(func() error {
			view := vo.FeedItemFromRecord(item)
			if view.ImageURL == "" && item.ImageID != "" {
				view.ApplyResolution(e.resolver.Resolve(groupCtx, item.ImageID))
			}
			enriched[i] = view
			return nil
		})
	}
	// 解析失败已在 Resolver 内降级，这里只等待全部条目就位。
	_ = group.Wait()
	return enriched
}

var _ EnricherAPI = (*ItemEnricher)(nil)
