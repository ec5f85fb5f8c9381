package eventlog

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Entry is one recorded notification
type Entry struct {
	Seq        uint64      `json:"seq"`
	Type       string      `json:"type"`
	Payload    interface{} `json:"payload"`
	RecordedAt time.Time   `json:"recordedAt"`
}

// EventFilter narrows a query. Zero values match everything.
type EventFilter struct {
	Type  string
	After uint64
	Limit int
}

func (f EventFilter) matches(e Entry) bool {
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	return e.Seq > f.After
}

// Repository stores journal entries
type Repository interface {
	// Append stores an entry, possibly evicting the oldest
	Append(ctx context.Context, entry Entry) error

	// Query returns matching entries oldest first, keeping the newest Limit
	Query(ctx context.Context, filter EventFilter) ([]Entry, error)

	// DeleteBefore removes entries recorded before cutoff
	DeleteBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// MemoryRepository keeps the newest entries in a fixed-size LRU keyed by sequence
type MemoryRepository struct {
	cache *lru.Cache[uint64, Entry]
}

// NewMemoryRepository creates a journal holding at most capacity entries
func NewMemoryRepository(capacity int) (*MemoryRepository, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	cache, err := lru.New[uint64, Entry](capacity)
	if err != nil {
		return nil, err
	}
	return &MemoryRepository{cache: cache}, nil
}

func (r *MemoryRepository) Append(_ context.Context, entry Entry) error {
	r.cache.Add(entry.Seq, entry)
	return nil
}

func (r *MemoryRepository) Query(_ context.Context, filter EventFilter) ([]Entry, error) {
	// Keys come back oldest to newest; entries are never read with Get, so
	// recency order equals insertion order.
	var out []Entry
	for _, seq := range r.cache.Keys() {
		e, ok := r.cache.Peek(seq)
		if ok && filter.matches(e) {
			out = append(out, e)
		}
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[len(out)-filter.Limit:]
	}
	return out, nil
}

func (r *MemoryRepository) DeleteBefore(_ context.Context, cutoff time.Time) (int, error) {
	removed := 0
	for _, seq := range r.cache.Keys() {
		e, ok := r.cache.Peek(seq)
		if ok && e.RecordedAt.Before(cutoff) {
			r.cache.Remove(seq)
			removed++
		}
	}
	return removed, nil
}

// Len reports how many entries are held
func (r *MemoryRepository) Len() int {
	return r.cache.Len()
}
