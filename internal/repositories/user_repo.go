package repositories

import (
	"context"
	"fmt"

	"github.com/DogukanTopcu/feed-ranking-viewer/internal/models/po"
	"github.com/go-kratos/kratos/v2/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository 访问 users 集合。
type UserRepository struct {
	db  *mongo.Database
	log *log.Helper
}

// NewUserRepository 构造仓储实例。
func NewUserRepository(db *mongo.Database, logger log.Logger) *UserRepository {
	return &UserRepository{
		db:  db,
		log: log.NewHelper(logger),
	}
}

// ListByIDs 批量读取用户，仅投影 handle 与展示资料。
func (r *UserRepository) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*po.UserRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	opts := options.Find().SetProjection(bson.M{"_id": 1, "handle": 1, "profile": 1})
	cursor, err := r.db.Collection(usersCollection).Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	var users []*po.UserRecord
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}
