// Package controllers 提供传输层 Handler，负责处理外部请求并调用业务层。
// 该层负责参数解析、DTO 转换和错误到状态码的映射。
package controllers

import (
	"github.com/DogukanTopcu/feed-ranking-viewer/internal/services"
	"github.com/google/wire"
)

// ProvideViewServiceAPI adapts ViewService into ViewServiceAPI for dependency injection.
func ProvideViewServiceAPI(s *services.ViewService) ViewServiceAPI { return s }

// ProvideHandlerTimeouts 返回默认超时配置。
func ProvideHandlerTimeouts() HandlerTimeouts { return HandlerTimeouts{} }

// ProviderSet collects controller constructors for Wire DI.
var ProviderSet = wire.NewSet(
	ProvideHandlerTimeouts,
	NewBaseHandler,
	ProvideViewServiceAPI,
	NewViewHandler,
)
