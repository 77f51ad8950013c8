package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/DogukanTopcu/feed-ranking-viewer/internal/models/vo"
	"github.com/DogukanTopcu/feed-ranking-viewer/internal/services"

	"github.com/go-kratos/kratos/v2/log"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

const defaultCatalogLimit = 50

// ViewServiceAPI 定义 ViewHandler 依赖的 Service 能力。
type ViewServiceAPI interface {
	SampleView(ctx context.Context, feedID string) (*vo.SampleView, error)
	RankedView(ctx context.Context, feedID string) (*vo.RankedView, error)
	RerankedView(ctx context.Context, feedID string, nCols int32) (*vo.RerankedView, error)
	ListFeeds(ctx context.Context, limit int64) ([]vo.FeedSummary, error)
}

// ViewHandler 暴露三类视图与目录列表的 HTTP 接口。
type ViewHandler struct {
	*BaseHandler
	service ViewServiceAPI
	log     *log.Helper
}

// NewViewHandler 构造 ViewHandler。
func NewViewHandler(service ViewServiceAPI, base *BaseHandler, logger log.Logger) *ViewHandler {
	if base == nil {
		base = NewBaseHandler(HandlerTimeouts{})
	}
	return &ViewHandler{
		BaseHandler: base,
		service:     service,
		log:         log.NewHelper(logger),
	}
}

// RegisterRoutes 在 HTTP 服务器上挂载视图路由。
func (h *ViewHandler) RegisterRoutes(srv *khttp.Server) {
	route := srv.Route("/v1")
	route.GET("/feeds", h.ListFeeds)
	route.GET("/feeds/{feedId}", h.GetSample)
	route.GET("/feeds/{feedId}/ranked", h.GetRanked)
	route.GET("/feeds/{feedId}/reranked", h.GetReranked)
}

type errorBody struct {
	Error string `json:"error"`
}

type rerankedNotFoundBody struct {
	Error          string  `json:"error"`
	AvailableNCols []int32 `json:"availableNCols"`
}

type catalogBody struct {
	Feeds []vo.FeedSummary `json:"feeds"`
}

// ListFeeds 返回最近更新的候选池目录。
func (h *ViewHandler) ListFeeds(ctx khttp.Context) error {
	limit := int64(defaultCatalogLimit)
	if raw := ctx.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeQuery)
	defer cancel()

	feeds, err := h.service.ListFeeds(timeoutCtx, limit)
	if err != nil {
		h.log.WithContext(ctx).Errorw("msg", "list feeds failed", "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
	if feeds == nil {
		feeds = []vo.FeedSummary{}
	}
	return ctx.JSON(http.StatusOK, catalogBody{Feeds: feeds})
}

// GetSample 返回候选池视图。
func (h *ViewHandler) GetSample(ctx khttp.Context) error {
	feedID := ctx.Vars().Get("feedId")
	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeQuery)
	defer cancel()

	view, err := h.service.SampleView(timeoutCtx, feedID)
	switch {
	case err == nil:
		return ctx.JSON(http.StatusOK, view)
	case errors.Is(err, services.ErrSampleNotFound):
		return ctx.JSON(http.StatusNotFound, errorBody{Error: "feed sample not found"})
	default:
		h.log.WithContext(ctx).Errorw("msg", "get sample view failed", "feed_id", feedID, "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}

// GetRanked 返回最新排序视图。
func (h *ViewHandler) GetRanked(ctx khttp.Context) error {
	feedID := ctx.Vars().Get("feedId")
	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeQuery)
	defer cancel()

	view, err := h.service.RankedView(timeoutCtx, feedID)
	switch {
	case err == nil:
		return ctx.JSON(http.StatusOK, view)
	case errors.Is(err, services.ErrRankedNotFound):
		return ctx.JSON(http.StatusNotFound, errorBody{Error: "ranked feed not found"})
	default:
		h.log.WithContext(ctx).Errorw("msg", "get ranked view failed", "feed_id", feedID, "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}

// GetReranked 返回指定列数的重排视图。
// 变体缺失时响应 404 并附上现存变体目录，供前端切换。
func (h *ViewHandler) GetReranked(ctx khttp.Context) error {
	feedID := ctx.Vars().Get("feedId")
	var nCols int32
	if raw := ctx.Query().Get("nCols"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 32); err == nil {
			nCols = int32(parsed)
		}
	}
	timeoutCtx, cancel := h.WithTimeout(ctx, HandlerTypeQuery)
	defer cancel()

	view, err := h.service.RerankedView(timeoutCtx, feedID, nCols)
	var notFound *services.RerankedNotFoundError
	switch {
	case err == nil:
		return ctx.JSON(http.StatusOK, view)
	case errors.As(err, &notFound):
		return ctx.JSON(http.StatusNotFound, rerankedNotFoundBody{
			Error:          "reranked feed not found",
			AvailableNCols: notFound.AvailableCols,
		})
	default:
		h.log.WithContext(ctx).Errorw("msg", "get reranked view failed", "feed_id", feedID, "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}
