// Package server 装配对外的 HTTP 服务器。
package server

import (
	"context"
	"net/http"

	"github.com/DogukanTopcu/feed-ranking-viewer/internal/controllers"
	"github.com/go-kratos/kratos/v2/log"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"
	"github.com/google/wire"
)

// Config 描述 HTTP 服务器的监听配置。
type Config struct {
	Addr string
}

type requestIDKey struct{}

// RequestIDFromContext 返回当前请求的关联标识，没有时为空串。
func RequestIDFromContext(ctx context.Context) string {
	rid, _ := ctx.Value(requestIDKey{}).(string)
	return rid
}

// requestIDFilter 为每个请求补齐 X-Request-Id 并写入上下文。
func requestIDFilter() khttp.FilterFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := r.Header.Get("X-Request-Id")
			if rid == "" {
				rid = uuid.NewString()
			}
			w.Header().Set("X-Request-Id", rid)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, rid)))
		})
	}
}

// NewHTTPServer 构造 HTTP 服务器并挂载视图路由。
func NewHTTPServer(cfg Config, handler *controllers.ViewHandler, logger log.Logger) *khttp.Server {
	opts := []khttp.ServerOption{
		khttp.Filter(requestIDFilter()),
	}
	if cfg.Addr != "" {
		opts = append(opts, khttp.Address(cfg.Addr))
	}
	srv := khttp.NewServer(opts...)
	handler.RegisterRoutes(srv)
	log.NewHelper(logger).Infow("msg", "http server configured", "addr", cfg.Addr)
	return srv
}

// ProviderSet collects server constructors for Wire DI.
var ProviderSet = wire.NewSet(NewHTTPServer)
