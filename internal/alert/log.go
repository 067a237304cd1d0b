package alert

import (
	"context"
	"sync"
)

// DefaultRecentLimit caps how much history the query surface returns.
const DefaultRecentLimit = 100

// Log is the append-only alert history port.
type Log interface {
	Append(ctx context.Context, a *Alert) error
	Recent(ctx context.Context, limit int) ([]*Alert, error)
}

// InMemoryLog keeps alerts in arrival order, bounded only by process memory.
// Alerts are never mutated or deleted once appended.
type InMemoryLog struct {
	mu     sync.RWMutex
	alerts []*Alert
}

func NewInMemoryLog() *InMemoryLog {
	return &InMemoryLog{}
}

func (l *InMemoryLog) Append(_ context.Context, a *Alert) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	cp := *a
	l.alerts = append(l.alerts, &cp)
	return nil
}

// Recent returns up to limit alerts, most recent first. A non-positive limit
// falls back to DefaultRecentLimit.
func (l *InMemoryLog) Recent(_ context.Context, limit int) ([]*Alert, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := len(l.alerts)
	if limit > n {
		limit = n
	}
	out := make([]*Alert, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		cp := *l.alerts[i]
		out = append(out, &cp)
	}
	return out, nil
}
