// Package vo 定义向上层返回的视图对象。
package vo

import "time"

// ResolvedImage 表示内容解析得到的展示地址与代表色，查不到时为零值。
type ResolvedImage struct {
	URL   string
	Color string
}

// FeedItem 表示补全图片信息后的展示条目。
type FeedItem struct {
	ImageID    string         `json:"image_id"`
	ImageURL   string         `json:"image_url,omitempty"`
	Color      string         `json:"color,omitempty"`
	SourceType string         `json:"source_type"`
	Score      float64        `json:"score"`
	IsSeen     *bool          `json:"is_seen,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// SampleView 汇总候选池视图返回的数据。
type SampleView struct {
	FeedID    string     `json:"feed_id"`
	UserID    string     `json:"user_id"`
	ItemCount int32      `json:"item_count"`
	UpdatedAt time.Time  `json:"updated_at"`
	Items     []FeedItem `json:"feed_items"`
}

// RankedView 汇总排序视图返回的数据，条目保持排序输出顺序。
type RankedView struct {
	FeedID       string             `json:"feed_id"`
	RankedFeedID string             `json:"ranked_feed_id"`
	UserID       string             `json:"user_id"`
	Weights      map[string]float64 `json:"weights,omitempty"`
	Details      map[string]float64 `json:"details,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	Items        []FeedItem         `json:"feed_items"`
}

// RerankedView 汇总重排视图返回的数据，条目保持存储顺序。
// AvailableCols 始终携带该候选池现存的全部列数变体。
type RerankedView struct {
	FeedID          string             `json:"feed_id"`
	RerankedFeedID  string             `json:"reranked_feed_id"`
	RankedFeedID    string             `json:"ranked_feed_id"`
	UserID          string             `json:"user_id"`
	NCols           int32              `json:"nCols"`
	HMin            float64            `json:"h_min"`
	HMax            float64            `json:"h_max"`
	ClusterSequence []int32            `json:"cluster_sequence,omitempty"`
	Details         map[string]float64 `json:"details,omitempty"`
	AvailableCols   []int32            `json:"availableNCols"`
	Items           []FeedItem         `json:"feed_items"`
}

// FeedSummary 表示目录列表里的单个候选池概要。
type FeedSummary struct {
	FeedID      string    `json:"feed_id"`
	UserID      string    `json:"user_id"`
	Handle      string    `json:"handle,omitempty"`
	DisplayName string    `json:"display_name,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	ItemCount   int32     `json:"item_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}
