package services

import (
	"context"
	"errors"

	"github.com/DogukanTopcu/feed-ranking-viewer/internal/models/vo"
	"github.com/DogukanTopcu/feed-ranking-viewer/internal/repositories"
	"github.com/go-kratos/kratos/v2/log"
)

// ImageResolver 把图片标识解析为展示地址与代表色。
// 解析失败只降级为零值，绝不向上抛错，可被任意并发调用。
type ImageResolver struct {
	images ImageFinder
	log    *log.Helper
}

// NewImageResolver 构造 ImageResolver。
func NewImageResolver(images ImageFinder, logger log.Logger) *ImageResolver {
	return &ImageResolver{
		images: images,
		log:    log.NewHelper(logger),
	}
}

// Resolve 查询图片记录并返回第一个展示地址与存储的代表色。
// 记录不存在、标识为空或查询失败时返回零值。
func (r *ImageResolver) Resolve(ctx context.Context, imageID string) vo.ResolvedImage {
	if imageID == "" {
		return vo.ResolvedImage{}
	}
	record, err := r.images.FindByDocID(ctx, imageID)
	if errors.Is(err, repositories.ErrNotFound) {
		return vo.ResolvedImage{}
	}
	if err != nil {
		r.log.WithContext(ctx).Warnw("msg", "resolve image failed", "image_id", imageID, "error", err)
		return vo.ResolvedImage{}
	}
	resolved := vo.ResolvedImage{Color: record.ColorRepresentation}
	if len(record.ImagesPaths) > 0 {
		resolved.URL = record.ImagesPaths[0]
	}
	return resolved
}

var _ ImageResolverAPI = (*ImageResolver)(nil)
