package alert

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"suraksha/internal/tourist"
)

// TouristDirectory is the narrow slice of the registry the alert workflow
// needs: display-name lookups at broadcast time.
type TouristDirectory interface {
	FindByID(ctx context.Context, id string) (*tourist.Tourist, error)
}

// PanicReport is the (mostly optional) panic-button input. Defaults fill every
// gap so reporting always succeeds.
type PanicReport struct {
	UserID    string
	Location  *Location
	Timestamp string
	Notes     string
}

// Service records panic events and triggers the realtime fan-out. The
// broadcast is an outbox call made after the append commits; its delivery is
// best-effort and never fails the report.
type Service struct {
	log         Log
	directory   TouristDirectory
	broadcaster Broadcaster
	logger      *slog.Logger
}

func NewService(log Log, directory TouristDirectory, broadcaster Broadcaster, logger *slog.Logger) *Service {
	if broadcaster == nil {
		broadcaster = NoopBroadcaster{}
	}
	return &Service{log: log, directory: directory, broadcaster: broadcaster, logger: logger}
}

// RecordPanic constructs the alert, appends it, then broadcasts the
// denormalized event to all connected viewers.
func (s *Service) RecordPanic(ctx context.Context, report PanicReport) (*Alert, error) {
	userID := report.UserID
	if userID == "" {
		userID = "t000"
	}
	loc := DefaultLocation
	if report.Location != nil {
		loc = *report.Location
	}
	ts := report.Timestamp
	if ts == "" {
		ts = time.Now().Format(time.RFC3339)
	}

	a := &Alert{
		AlertID:   "a_" + uuid.NewString(),
		UserID:    userID,
		Type:      TypePanic,
		Location:  loc,
		Severity:  SeverityHigh,
		Status:    StatusActive,
		Timestamp: ts,
		Notes:     report.Notes,
	}
	if err := s.log.Append(ctx, a); err != nil {
		return nil, err
	}

	name := "Unknown"
	if t, err := s.directory.FindByID(ctx, userID); err == nil {
		name = t.Name
	}

	s.broadcaster.BroadcastPanic(Event{
		AlertID:   a.AlertID,
		UserID:    a.UserID,
		Name:      name,
		Location:  a.Location,
		Severity:  a.Severity,
		Timestamp: a.Timestamp,
		Notes:     report.Notes,
	})

	s.logger.Info("panic alert recorded",
		"alert_id", a.AlertID,
		"user_id", a.UserID,
		"name", name,
	)
	return a, nil
}

// Recent exposes the newest-first history. It never mutates state.
func (s *Service) Recent(ctx context.Context, limit int) ([]*Alert, error) {
	return s.log.Recent(ctx, limit)
}
