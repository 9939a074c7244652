package prediction

import (
	"time"

	"mlserve/internal/feature"
)

// LogEntry is one persisted record of a scored request. Rows are written
// exactly once and never updated or deleted.
type LogEntry struct {
	ID         int64
	Timestamp  time.Time
	Vector     feature.Vector
	Prediction int
}
