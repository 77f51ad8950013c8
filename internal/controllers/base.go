package controllers

import (
	"context"
	"time"
)

// HandlerType 区分不同访问类型的超时档位。
type HandlerType int

// HandlerTypeQuery 表示只读查询类请求。
const HandlerTypeQuery HandlerType = iota

const defaultQueryTimeout = 5 * time.Second

// HandlerTimeouts 描述各类请求的超时配置，零值取默认档。
type HandlerTimeouts struct {
	Query time.Duration
}

// BaseHandler 提供 Handler 共用的超时控制能力。
type BaseHandler struct {
	timeouts HandlerTimeouts
}

// NewBaseHandler 构造 BaseHandler。
func NewBaseHandler(timeouts HandlerTimeouts) *BaseHandler {
	if timeouts.Query <= 0 {
		timeouts.Query = defaultQueryTimeout
	}
	return &BaseHandler{timeouts: timeouts}
}

// WithTimeout 按请求类型派生带超时的上下文。
func (h *BaseHandler) WithTimeout(ctx context.Context, handlerType HandlerType) (context.Context, context.CancelFunc) {
	switch handlerType {
	case HandlerTypeQuery:
		return context.WithTimeout(ctx, h.timeouts.Query)
	default:
		return context.WithTimeout(ctx, h.timeouts.Query)
	}
}
