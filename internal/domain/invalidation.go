package domain

import "time"

// Stream names
const (
	StreamDashboardInvalidate = "stream:dashboard:invalidate"
)

// InvalidationEvent - событие инвалидации ключа кеша, рассылается между репликами
type InvalidationEvent struct {
	Origin string    `json:"origin"`
	Key    QueryKey  `json:"key"`
	Exact  bool      `json:"exact"`
	At     time.Time `json:"at"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
