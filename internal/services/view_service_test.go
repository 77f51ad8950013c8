package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DogukanTopcu/feed-ranking-viewer/internal/models/po"
	"github.com/DogukanTopcu/feed-ranking-viewer/internal/models/vo"
	"github.com/DogukanTopcu/feed-ranking-viewer/internal/repositories"
	"github.com/DogukanTopcu/feed-ranking-viewer/internal/services"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubSampleRepo struct {
	sample  *po.FeedSample
	samples []*po.FeedSample
	err     error
	lastID  primitive.ObjectID
}

func (s *stubSampleRepo) Get(_ context.Context, id primitive.ObjectID) (*po.FeedSample, error) {
	s.lastID = id
	if s.err != nil {
		return nil, s.err
	}
	if s.sample == nil {
		return nil, repositories.ErrNotFound
	}
	return s.sample, nil
}

func (s *stubSampleRepo) ListRecent(_ context.Context, _ int64) ([]*po.FeedSample, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.samples, nil
}

type stubRankedRepo struct {
	ranked *po.RankedFeed
	err    error
	lastID primitive.ObjectID
}

func (s *stubRankedRepo) LatestBySample(_ context.Context, sampleID primitive.ObjectID) (*po.RankedFeed, error) {
	s.lastID = sampleID
	if s.err != nil {
		return nil, s.err
	}
	if s.ranked == nil {
		return nil, repositories.ErrNotFound
	}
	return s.ranked, nil
}

type stubRerankedRepo struct {
	reranked *po.RerankedFeed
	cols     []int32
	getErr   error
	listErr  error
	lastCols int32
}

func (s *stubRerankedRepo) GetByCols(_ context.Context, _ primitive.ObjectID, nCols int32) (*po.RerankedFeed, error) {
	s.lastCols = nCols
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.reranked == nil || s.reranked.NCols != nCols {
		return nil, repositories.ErrNotFound
	}
	return s.reranked, nil
}

func (s *stubRerankedRepo) ListCols(_ context.Context, _ primitive.ObjectID) ([]int32, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.cols, nil
}

type stubUserFinder struct {
	users []*po.UserRecord
	err   error
}

func (s *stubUserFinder) ListByIDs(_ context.Context, _ []primitive.ObjectID) ([]*po.UserRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users, nil
}

// passthroughEnricher 标记每个条目以验证补全被调用且顺序保持。
type passthroughEnricher struct{}

func (passthroughEnricher) Enrich(_ context.Context, items []po.FeedItem) []vo.FeedItem {
	enriched := make([]vo.FeedItem, len(items))
	for i, item := range items {
		enriched[i] = vo.FeedItemFromRecord(item)
		if enriched[i].ImageURL == "" {
			enriched[i].ImageURL = "enriched://" + item.ImageID
		}
	}
	return enriched
}

func newViewService(samples *stubSampleRepo, ranked *stubRankedRepo, reranked *stubRerankedRepo, users *stubUserFinder) *services.ViewService {
	if samples == nil {
		samples = &stubSampleRepo{}
	}
	if ranked == nil {
		ranked = &stubRankedRepo{}
	}
	if reranked == nil {
		reranked = &stubRerankedRepo{}
	}
	if users == nil {
		users = &stubUserFinder{}
	}
	return services.NewViewService(samples, ranked, reranked, users, passthroughEnricher{}, stdLogger)
}

func TestViewService_SampleView_ReturnsEnrichedItemsInOrder(t *testing.T) {
	sampleID := primitive.NewObjectID()
	now := time.Now().UTC()
	samples := &stubSampleRepo{sample: &po.FeedSample{
		ID:        sampleID,
		UserID:    "user-1",
		ItemCount: 3,
		UpdatedAt: now,
		FeedItems: []po.FeedItem{
			{ImageID: "img-a"},
			{ImageID: "img-b"},
			{ImageID: "img-c"},
		},
	}}
	service := newViewService(samples, nil, nil, nil)

	view, err := service.SampleView(context.Background(), sampleID.Hex())

	require.NoError(t, err)
	require.Equal(t, sampleID.Hex(), view.FeedID)
	require.Equal(t, "user-1", view.UserID)
	require.Equal(t, int32(3), view.ItemCount)
	require.Len(t, view.Items, 3)
	require.Equal(t, "img-a", view.Items[0].ImageID)
	require.Equal(t, "img-b", view.Items[1].ImageID)
	require.Equal(t, "img-c", view.Items[2].ImageID)
	require.Equal(t, "enriched://img-a", view.Items[0].ImageURL)
	require.Equal(t, sampleID, samples.lastID)
}

func TestViewService_SampleView_NotFound(t *testing.T) {
	service := newViewService(&stubSampleRepo{}, nil, nil, nil)

	_, err := service.SampleView(context.Background(), primitive.NewObjectID().Hex())

	require.ErrorIs(t, err, services.ErrSampleNotFound)
}

func TestViewService_SampleView_MalformedID(t *testing.T) {
	service := newViewService(&stubSampleRepo{}, nil, nil, nil)

	_, err := service.SampleView(context.Background(), "not-an-object-id")

	require.ErrorIs(t, err, services.ErrSampleNotFound)
}

func TestViewService_SampleView_UpstreamFailure(t *testing.T) {
	samples := &stubSampleRepo{err: errors.New("server selection timeout")}
	service := newViewService(samples, nil, nil, nil)

	_, err := service.SampleView(context.Background(), primitive.NewObjectID().Hex())

	require.Error(t, err)
	require.NotErrorIs(t, err, services.ErrSampleNotFound)
}

func TestViewService_RankedView_MapsMetadata(t *testing.T) {
	sampleID := primitive.NewObjectID()
	rankedID := primitive.NewObjectID()
	created := time.Now().UTC()
	ranked := &stubRankedRepo{ranked: &po.RankedFeed{
		ID:           rankedID,
		UserID:       "user-1",
		FeedSampleID: sampleID,
		FeedItems:    []po.FeedItem{{ImageID: "img-a"}, {ImageID: "img-b"}},
		Details:      map[string]float64{"total_time": 1.25},
		Variables:    po.RankVariables{Weights: map[string]float64{"aesthetic": 0.7}},
		CreatedAt:    created,
	}}
	service := newViewService(nil, ranked, nil, nil)

	view, err := service.RankedView(context.Background(), sampleID.Hex())

	require.NoError(t, err)
	require.Equal(t, sampleID.Hex(), view.FeedID)
	require.Equal(t, rankedID.Hex(), view.RankedFeedID)
	require.Equal(t, 0.7, view.Weights["aesthetic"])
	require.Equal(t, 1.25, view.Details["total_time"])
	require.Len(t, view.Items, 2)
	require.Equal(t, sampleID, ranked.lastID)
}

func TestViewService_RankedView_NotFound(t *testing.T) {
	service := newViewService(nil, &stubRankedRepo{}, nil, nil)

	_, err := service.RankedView(context.Background(), primitive.NewObjectID().Hex())

	require.ErrorIs(t, err, services.ErrRankedNotFound)
}

func TestViewService_RerankedView_DefaultCols(t *testing.T) {
	reranked := &stubRerankedRepo{cols: []int32{3}}
	service := newViewService(nil, nil, reranked, nil)

	_, err := service.RerankedView(context.Background(), primitive.NewObjectID().Hex(), 0)

	require.Error(t, err)
	require.Equal(t, services.DefaultRerankCols, reranked.lastCols)
}

func TestViewService_RerankedView_MissingVariantCarriesCatalog(t *testing.T) {
	reranked := &stubRerankedRepo{cols: []int32{3}}
	service := newViewService(nil, nil, reranked, nil)

	_, err := service.RerankedView(context.Background(), primitive.NewObjectID().Hex(), 5)

	require.ErrorIs(t, err, services.ErrRerankedNotFound)
	var notFound *services.RerankedNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, []int32{3}, notFound.AvailableCols)
}

func TestViewService_RerankedView_PassesOrderThrough(t *testing.T) {
	sampleID := primitive.NewObjectID()
	rerankedID := primitive.NewObjectID()
	rankedID := primitive.NewObjectID()
	reranked := &stubRerankedRepo{
		cols: []int32{3, 5},
		reranked: &po.RerankedFeed{
			ID:           rerankedID,
			UserID:       "user-1",
			FeedSampleID: sampleID,
			RankedFeedID: rankedID,
			NCols:        5,
			Variables: po.RerankVariables{
				HMin:            180,
				HMax:            420,
				ClusterSequence: []int32{2, 0, 1, 1},
			},
			Details: map[string]float64{"total_time": 0.4},
			FeedItems: []po.FeedItem{
				{ImageID: "img-z"},
				{ImageID: "img-a"},
				{ImageID: "img-m"},
			},
		},
	}
	service := newViewService(nil, nil, reranked, nil)

	view, err := service.RerankedView(context.Background(), sampleID.Hex(), 5)

	require.NoError(t, err)
	require.Equal(t, int32(5), view.NCols)
	require.Equal(t, float64(180), view.HMin)
	require.Equal(t, float64(420), view.HMax)
	require.Equal(t, []int32{2, 0, 1, 1}, view.ClusterSequence)
	require.Equal(t, []int32{3, 5}, view.AvailableCols)
	// 重排顺序为权威顺序，禁止任何二次排序。
	require.Equal(t, "img-z", view.Items[0].ImageID)
	require.Equal(t, "img-a", view.Items[1].ImageID)
	require.Equal(t, "img-m", view.Items[2].ImageID)
}

func TestViewService_RerankedView_MalformedIDYieldsEmptyCatalog(t *testing.T) {
	service := newViewService(nil, nil, &stubRerankedRepo{}, nil)

	_, err := service.RerankedView(context.Background(), "zz", 5)

	var notFound *services.RerankedNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Empty(t, notFound.AvailableCols)
}

func TestViewService_ListFeeds_JoinsOwnerProfiles(t *testing.T) {
	ownerID := primitive.NewObjectID()
	samples := &stubSampleRepo{samples: []*po.FeedSample{
		{ID: primitive.NewObjectID(), UserID: ownerID.Hex(), ItemCount: 10},
		{ID: primitive.NewObjectID(), UserID: "not-an-object-id", ItemCount: 4},
	}}
	users := &stubUserFinder{users: []*po.UserRecord{
		{ID: ownerID, Handle: "artist", Profile: po.UserProfile{DisplayName: "Artist"}},
	}}
	service := newViewService(samples, nil, nil, users)

	feeds, err := service.ListFeeds(context.Background(), 20)

	require.NoError(t, err)
	require.Len(t, feeds, 2)
	require.Equal(t, "artist", feeds[0].Handle)
	require.Empty(t, feeds[1].Handle)
}

func TestViewService_ListFeeds_OwnerLookupFailureDegrades(t *testing.T) {
	ownerID := primitive.NewObjectID()
	samples := &stubSampleRepo{samples: []*po.FeedSample{
		{ID: primitive.NewObjectID(), UserID: ownerID.Hex(), ItemCount: 1},
	}}
	users := &stubUserFinder{err: errors.New("connection reset")}
	service := newViewService(samples, nil, nil, users)

	feeds, err := service.ListFeeds(context.Background(), 20)

	require.NoError(t, err)
	require.Len(t, feeds, 1)
	require.Empty(t, feeds[0].Handle)
}
