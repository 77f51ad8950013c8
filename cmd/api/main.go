// Command api 启动视图物化服务：
// 显式建立文档库连接，装配依赖后运行 HTTP 服务器。
package main

import (
	"context"
	"os"
	"time"

	"github.com/DogukanTopcu/feed-ranking-viewer/internal/server"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Name 是注册在应用元信息里的服务名。
const Name = "feed-ranking-viewer"

const (
	defaultDatabase = "ranking-algorithm"
	connectTimeout  = 10 * time.Second
)

func newApp(logger log.Logger, srv *khttp.Server) *kratos.App {
	return kratos.New(
		kratos.Name(Name),
		kratos.Logger(logger),
		kratos.Server(srv),
	)
}

func main() {
	_ = godotenv.Load()

	logger := log.With(log.NewStdLogger(os.Stdout),
		"ts", log.DefaultTimestamp,
		"caller", log.DefaultCaller,
		"service.name", Name,
	)
	helper := log.NewHelper(logger)

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		helper.Fatal("MONGODB_URI is not set")
	}
	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = defaultDatabase
	}
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8000"
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		helper.Fatalw("msg", "connect mongodb failed", "error", err)
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), connectTimeout)
		defer disconnectCancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			helper.Errorw("msg", "disconnect mongodb failed", "error", err)
		}
	}()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		helper.Fatalw("msg", "ping mongodb failed", "error", err)
	}

	app, err := wireApp(client.Database(dbName), server.Config{Addr: addr}, logger)
	if err != nil {
		helper.Fatalw("msg", "assemble application failed", "error", err)
	}
	if err := app.Run(); err != nil {
		helper.Fatalw("msg", "run application failed", "error", err)
	}
}
