package tourist

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

// SeedFromFile loads tourists from a JSON fixture into the store. A missing
// or malformed file only logs a warning: seeding is a dev convenience, not a
// startup requirement. Returns the number of records loaded.
func SeedFromFile(ctx context.Context, path string, store Store, logger *slog.Logger) int {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("seed file unreadable", "path", path, "error", err)
		}
		return 0
	}

	var records []Tourist
	if err := json.Unmarshal(raw, &records); err != nil {
		logger.Warn("seed file malformed", "path", path, "error", err)
		return 0
	}

	loaded := 0
	for i := range records {
		t := records[i]
		if t.ID == "" {
			t.ID = "t_" + uuid.NewString()
		}
		if t.VerificationStatus == "" {
			t.VerificationStatus = StatusPending
		}
		if t.ApplicationDate.IsZero() {
			t.ApplicationDate = time.Now()
		}
		if err := store.Create(ctx, &t); err != nil {
			logger.Warn("seed record skipped", "id", t.ID, "error", err)
			continue
		}
		loaded++
	}
	logger.Info("seed data loaded", "path", path, "count", loaded)
	return loaded
}
