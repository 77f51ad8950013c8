package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/DogukanTopcu/feed-ranking-viewer/internal/models/po"
	"github.com/go-kratos/kratos/v2/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ImageRepository 访问 images 集合。
type ImageRepository struct {
	db  *mongo.Database
	log *log.Helper
}

// NewImageRepository 构造仓储实例。
func NewImageRepository(db *mongo.Database, logger log.Logger) *ImageRepository {
	return &ImageRepository{
		db:  db,
		log: log.NewHelper(logger),
	}
}

// FindByDocID 按 doc_id 读取图片记录，仅投影展示地址与代表色。
func (r *ImageRepository) FindByDocID(ctx context.Context, docID string) (*po.ImageRecord, error) {
	opts := options.FindOne().SetProjection(bson.M{
		"images_paths":         1,
		"color_representation": 1,
	})
	var record po.ImageRecord
	err := r.db.Collection(imagesCollection).FindOne(ctx, bson.M{"doc_id": docID}, opts).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find image by doc_id: %w", err)
	}
	return &record, nil
}
