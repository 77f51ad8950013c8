package services

import (
	"github.com/DogukanTopcu/feed-ranking-viewer/internal/repositories"
	"github.com/google/wire"
)

// ProvideSampleRepository adapts the concrete repository for DI.
func ProvideSampleRepository(r *repositories.FeedSampleRepository) SampleRepository { return r }

// ProvideRankedRepository adapts the concrete repository for DI.
func ProvideRankedRepository(r *repositories.RankedFeedRepository) RankedRepository { return r }

// ProvideRerankedRepository adapts the concrete repository for DI.
func ProvideRerankedRepository(r *repositories.RerankedFeedRepository) RerankedRepository { return r }

// ProvideImageFinder adapts the concrete repository for DI.
func ProvideImageFinder(r *repositories.ImageRepository) ImageFinder { return r }

// ProvideUserFinder adapts the concrete repository for DI.
func ProvideUserFinder(r *repositories.UserRepository) UserFinder { return r }

// ProvideImageResolverAPI adapts ImageResolver for DI.
func ProvideImageResolverAPI(r *ImageResolver) ImageResolverAPI { return r }

// ProvideEnricherAPI adapts ItemEnricher for DI.
func ProvideEnricherAPI(e *ItemEnricher) EnricherAPI { return e }

// ProviderSet collects service constructors for Wire DI.
var ProviderSet = wire.NewSet(
	ProvideSampleRepository,
	ProvideRankedRepository,
	ProvideRerankedRepository,
	ProvideImageFinder,
	ProvideUserFinder,
	NewImageResolver,
	ProvideImageResolverAPI,
	NewItemEnricher,
	ProvideEnricherAPI,
	NewViewService,
)
