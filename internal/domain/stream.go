package domain

import "time"

// Stream names
const (
	StreamSearchEvents = "stream:venues:search"
)

// Источники данных
const (
	SourceOverpass = "overpass"
	SourceGenAI    = "genai"
)

// SearchEvent - событие выполненного поиска, публикуется в Redis Stream
// и сохраняется воркером в историю поиска
type SearchEvent struct {
	RequestID   string        `json:"request_id"`
	Lat         float64       `json:"lat"`
	Lon         float64       `json:"lon"`
	Filters     SearchFilters `json:"filters"`
	Source      string        `json:"source"`
	ResultCount int           `json:"result_count"`
	CacheHit    bool          `json:"cache_hit"`
	DurationMs  float64       `json:"duration_ms"`
	CreatedAt   time.Time     `json:"created_at"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
