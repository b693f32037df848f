package events

import "time"

// BoardEventData 是帖子生命周期事件中携带的帖子核心数据。
// - 时间戳统一用毫秒级 Unix 时间，避免下游消费方处理时区
type BoardEventData struct {
	ID             uint64 `json:"id"`
	Title          string `json:"title"`
	Content        string `json:"content"`
	UserID         uint64 `json:"user_id"`
	AuthorUsername string `json:"author_username"`
	ViewCount      int64  `json:"view_count"`
	CreatedAt      int64  `json:"created_at"` // UnixMilli
	UpdatedAt      int64  `json:"updated_at"` // UnixMilli
}

// BoardCreatedEvent 帖子创建事件
type BoardCreatedEvent struct {
	EventID   string         `json:"event_id"`  // 事件唯一ID，用于下游幂等消费
	Timestamp time.Time      `json:"timestamp"` // 事件产生时间
	Post      BoardEventData `json:"post"`
}

// BoardUpdatedEvent 帖子更新事件
type BoardUpdatedEvent struct {
	EventID   string         `json:"event_id"`
	Timestamp time.Time      `json:"timestamp"`
	Post      BoardEventData `json:"post"`
}

// BoardDeletedEvent 帖子删除事件
type BoardDeletedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	PostID    uint64    `json:"post_id"`
}
