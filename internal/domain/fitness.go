package domain

import (
	"time"

	"github.com/google/uuid"
)

// Exercise is a catalog item that routines reference.
type Exercise struct {
	ID          uuid.UUID
	Name        string
	Description string
	Sets        int
	Reps        int
	RestSeconds int
	WeightKg    *float64
	ImageURL    *string
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
}

// ProgressSample is a single body-weight measurement.
type ProgressSample struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	WeightKg   float64
	RecordedOn time.Time
	CreatedAt  time.Time
}

// AverageWeight returns the arithmetic mean of the sample weights.
// The second result is false for an empty slice.
func AverageWeight(samples []ProgressSample) (float64, bool) {
	if len(samples) == 0 {
		return 0, false
	}
	var sum float64
	for _, s := range samples {
		sum += s.WeightKg
	}
	return sum / float64(len(samples)), true
}

// Goal is a personal objective with a date range.
type Goal struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Achieved    bool
	CreatedAt   time.Time
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
