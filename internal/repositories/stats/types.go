package stats

import (
	"time"
)

// SetActiveCountInput contains parameters for recording an activity sample
type SetActiveCountInput struct {
	Count int

	// RecordedAt is when the sample was taken
	RecordedAt time.Time
}

// GetActiveCountOutput contains the last recorded activity sample.
// A zero RecordedAt means nothing has been recorded yet.
type GetActiveCountOutput struct {
	Count      int
	RecordedAt time.Time
}
