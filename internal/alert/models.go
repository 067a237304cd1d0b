package alert

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DefaultLocation is the fallback coordinate used when a panic report carries
// no location (Connaught Place, New Delhi — matches the demo dashboards).
var DefaultLocation = Location{Lat: 28.6139, Lng: 77.209}

const (
	// TypePanic is the only alert kind today; Type stays an open string so
	// future kinds don't need a schema change.
	TypePanic = "panic"

	SeverityHigh = "high"
	StatusActive = "active"
)

// Alert is an immutable safety event. UserID is a lookup key only: the log
// must tolerate ids that match no known tourist.
type Alert struct {
	AlertID   string   `json:"alertId"`
	UserID    string   `json:"userId"`
	Type      string   `json:"type"`
	Location  Location `json:"location"`
	Severity  string   `json:"severity"`
	Status    string   `json:"status"`
	Timestamp string   `json:"timestamp"`
	Notes     string   `json:"notes,omitempty"`
}

// Event is the denormalized broadcast payload: the alert joined with the
// tourist's display name, looked up at broadcast time rather than stored.
type Event struct {
	AlertID   string   `json:"alertId"`
	UserID    string   `json:"userId"`
	Name      string   `json:"name"`
	Location  Location `json:"location"`
	Severity  string   `json:"severity"`
	Timestamp string   `json:"timestamp"`
	Notes     string   `json:"notes,omitempty"`
}

// Broadcaster fans an event out to every connected dashboard session. The
// realtime hub implements it in production; tests substitute a recorder and
// wiring may substitute a no-op.
type Broadcaster interface {
	BroadcastPanic(event Event)
}

// NoopBroadcaster drops every event. Used when no realtime layer is attached.
type NoopBroadcaster struct{}

func (NoopBroadcaster) BroadcastPanic(Event) {}
