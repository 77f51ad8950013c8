package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/DogukanTopcu/feed-ranking-viewer/internal/models/po"
	"github.com/DogukanTopcu/feed-ranking-viewer/internal/models/vo"
	"github.com/DogukanTopcu/feed-ranking-viewer/internal/repositories"
	"github.com/go-kratos/kratos/v2/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultRerankCols 是调用方未指定列数时采用的布局变体。
const DefaultRerankCols int32 = 5

// 各阶段记录缺失的哨兵错误，控制器据此映射为结构化的 not-found 响应。
var (
	ErrSampleNotFound   = errors.New("feed sample not found")
	ErrRankedNotFound   = errors.New("ranked feed not found")
	ErrRerankedNotFound = errors.New("reranked feed not found")
)

// RerankedNotFoundError 表示请求的列数变体不存在。
// 携带现存变体目录，属于"换一个变体"的合法结果而非故障。
type RerankedNotFoundError struct {
	AvailableCols []int32
}

func (e *RerankedNotFoundError) Error() string { return ErrRerankedNotFound.Error() }

// Unwrap 使 errors.Is(err, ErrRerankedNotFound) 成立。
func (e *RerankedNotFoundError) Unwrap() error { return ErrRerankedNotFound }

// ViewService 编排阶段选取、变体目录与条目补全，产出三类视图。
type ViewService struct {
	samples  SampleRepository
	ranked   RankedRepository
	reranked RerankedRepository
	users    UserFinder
	enricher EnricherAPI
	log      *log.Helper
}

// NewViewService 构造 ViewService。
func NewViewService(
	samples SampleRepository,
	ranked RankedRepository,
	reranked RerankedRepository,
	users UserFinder,
	enricher EnricherAPI,
	logger log.Logger,
) *ViewService {
	return &ViewService{
		samples:  samples,
		ranked:   ranked,
		reranked: reranked,
		users:    users,
		enricher: enricher,
		log:      log.NewHelper(logger),
	}
}

// SampleView 返回候选池视图：元数据加补全后的原始条目。
func (s *ViewService) SampleView(ctx context.Context, feedID string) (*vo.SampleView, error) {
	id, err := primitive.ObjectIDFromHex(feedID)
	if err != nil {
		return nil, ErrSampleNotFound
	}
	sample, err := s.samples.Get(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrSampleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get feed sample: %w", err)
	}
	return &vo.SampleView{
		FeedID:    sample.ID.Hex(),
		UserID:    sample.UserID,
		ItemCount: sample.ItemCount,
		UpdatedAt: sample.UpdatedAt,
		Items:     s.enricher.Enrich(ctx, sample.FeedItems),
	}, nil
}

// RankedView 返回最新排序视图：权重、耗时明细与按排序顺序补全的条目。
func (s *ViewService) RankedView(ctx context.Context, feedID string) (*vo.RankedView, error) {
	id, err := primitive.ObjectIDFromHex(feedID)
	if err != nil {
		return nil, ErrRankedNotFound
	}
	ranked, err := s.ranked.LatestBySample(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrRankedNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get latest ranked feed: %w", err)
	}
	return &vo.RankedView{
		FeedID:       ranked.FeedSampleID.Hex(),
		RankedFeedID: ranked.ID.Hex(),
		UserID:       ranked.UserID,
		Weights:      ranked.Variables.Weights,
		Details:      ranked.Details,
		CreatedAt:    ranked.CreatedAt,
		Items:        s.enricher.Enrich(ctx, ranked.FeedItems),
	}, nil
}

// RerankedView 返回指定列数的重排视图，条目顺序原样透传。
// nCols 非正时取 DefaultRerankCols；变体缺失时返回携带目录的
// RerankedNotFoundError，供调用方引导切换变体。
func (s *ViewService) RerankedView(ctx context.Context, feedID string, nCols int32) (*vo.RerankedView, error) {
	if nCols <= 0 {
		nCols = DefaultRerankCols
	}
	id, err := primitive.ObjectIDFromHex(feedID)
	if err != nil {
		return nil, &RerankedNotFoundError{AvailableCols: []int32{}}
	}
	cols, err := s.reranked.ListCols(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list reranked cols: %w", err)
	}
	if cols == nil {
		cols = []int32{}
	}
	reranked, err := s.reranked.GetByCols(ctx, id, nCols)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &RerankedNotFoundError{AvailableCols: cols}
	}
	if err != nil {
		return nil, fmt.Errorf("get reranked feed: %w", err)
	}
	return &vo.RerankedView{
		FeedID:          reranked.FeedSampleID.Hex(),
		RerankedFeedID:  reranked.ID.Hex(),
		RankedFeedID:    reranked.RankedFeedID.Hex(),
		UserID:          reranked.UserID,
		NCols:           reranked.NCols,
		HMin:            reranked.Variables.HMin,
		HMax:            reranked.Variables.HMax,
		ClusterSequence: reranked.Variables.ClusterSequence,
		Details:         reranked.Details,
		AvailableCols:   cols,
		Items:           s.enricher.Enrich(ctx, reranked.FeedItems),
	}, nil
}

// ListFeeds 返回最近更新的候选池目录，并尽量拼上归属用户资料。
// 用户查询失败只降级为无资料的目录项。
func (s *ViewService) ListFeeds(ctx context.Context, limit int64) ([]vo.FeedSummary, error) {
	samples, err := s.samples.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list feed samples: %w", err)
	}
	owners := s.lookupOwners(ctx, samples)
	summaries := make([]vo.FeedSummary, 0, len(samples))
	for _, sample := range samples {
		if sample == nil {
			continue
		}
		summaries = append(summaries, vo.FeedSummaryFromSample(sample, owners[sample.UserID]))
	}
	return summaries, nil
}

func (s *ViewService) lookupOwners(ctx context.Context, samples []*po.FeedSample) map[string]*po.UserRecord {
	ids := make([]primitive.ObjectID, 0, len(samples))
	seen := make(map[string]struct{}, len(samples))
	for _, sample := range samples {
		if sample == nil {
			continue
		}
		if _, ok := seen[sample.UserID]; ok {
			continue
		}
		seen[sample.UserID] = struct{}{}
		id, err := primitive.ObjectIDFromHex(sample.UserID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil
	}
	users, err := s.users.ListByIDs(ctx, ids)
	if err != nil {
		s.log.WithContext(ctx).Warnw("msg", "lookup feed owners failed", "error", err)
		return nil
	}
	owners := make(map[string]*po.UserRecord, len(users))
	for _, user := range users {
		if user == nil {
			continue
		}
		owners[user.ID.Hex()] = user
	}
	return owners
}

var _ ViewServiceInterface = (*ViewService)(nil)
