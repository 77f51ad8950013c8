package vo

import "github.com/DogukanTopcu/feed-ranking-viewer/internal/models/po"

// FeedItemFromRecord 根据持久化条目构造 FeedItem。
// 条目自带的 image_color 覆盖值直接生效，优先于后续任何解析结果。
func FeedItemFromRecord(record po.FeedItem) FeedItem {
	item := FeedItem{
		ImageID:    record.ImageID,
		ImageURL:   derefString(record.ImageURL),
		SourceType: record.SourceType,
		Score:      record.Score,
		IsSeen:     record.IsSeen,
	}
	if record.ImageColor != nil && *record.ImageColor != "" {
		item.Color = *record.ImageColor
	}
	if len(record.Metadata) > 0 {
		item.Metadata = map[string]any(record.Metadata)
	}
	return item
}

// ApplyResolution 将内容解析结果合并到 FeedItem 中。
// 已存在的 image_url 不会被覆盖；颜色仅在条目未带覆盖值时采用解析值。
func (item *FeedItem) ApplyResolution(resolved ResolvedImage) {
	if item == nil {
		return
	}
	if item.ImageURL == "" {
		item.ImageURL = resolved.URL
	}
	if item.Color == "" {
		item.Color = resolved.Color
	}
}

// FeedSummaryFromSample 根据候选池记录构造目录概要，用户资料可为空。
func FeedSummaryFromSample(sample *po.FeedSample, owner *po.UserRecord) FeedSummary {
	if sample == nil {
		return FeedSummary{}
	}
	summary := FeedSummary{
		FeedID:    sample.ID.Hex(),
		UserID:    sample.UserID,
		ItemCount: sample.ItemCount,
		UpdatedAt: sample.UpdatedAt,
	}
	if owner != nil {
		summary.Handle = owner.Handle
		summary.DisplayName = owner.Profile.DisplayName
		summary.AvatarURL = owner.Profile.AvatarURL
	}
	return summary
}

func derefString(ptr *string) string {
	if ptr == nil {
		return ""
	}
	return *ptr
}
