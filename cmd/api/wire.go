//go:build wireinject
// +build wireinject

package main

import (
	"github.com/DogukanTopcu/feed-ranking-viewer/internal/controllers"
	"github.com/DogukanTopcu/feed-ranking-viewer/internal/repositories"
	"github.com/DogukanTopcu/feed-ranking-viewer/internal/server"
	"github.com/DogukanTopcu/feed-ranking-viewer/internal/services"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/mongo"
)

// wireApp 基于显式注入的数据库句柄装配整个应用。
func wireApp(db *mongo.Database, cfg server.Config, logger log.Logger) (*kratos.App, error) {
	panic(wire.Build(
		repositories.ProviderSet,
		services.ProviderSet,
		controllers.ProviderSet,
		server.ProviderSet,
		newApp,
	))
}
