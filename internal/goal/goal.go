package goal

import (
	"time"

	"github.com/google/uuid"

	"github.com/jpcaldeira/tandem/internal/dateutil"
)

// Goal is a savings target. CurrentAmount is adjusted incrementally by
// the user, never recomputed from transactions.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CoupleID      *uuid.UUID
	Name          string
	TargetAmount  int64 // cents
	CurrentAmount int64 // cents, kept >= 0
	TargetDate    time.Time
	Description   string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// Progress is the derived view of a goal, pure function of the goal and
// the current date.
type Progress struct {
	Percent       float64
	Remaining     int64
	DaysRemaining int
	IsCompleted   bool
	IsOverdue     bool
}

// ComputeProgress derives the display metrics for a goal. Percent is
// clamped to [0, 100] even though the saved amount may legitimately
// exceed the target. A completed goal is never overdue, whatever its
// target date.
func ComputeProgress(g *Goal, today time.Time) Progress {
	percent := float64(g.CurrentAmount) / float64(g.TargetAmount) * 100
	if percent > 100 {
		percent = 100
	}

	if percent < 0 {
		percent = 0
	}

	remaining := g.TargetAmount - g.CurrentAmount
	if remaining < 0 {
		remaining = 0
	}

	days := dateutil.DaysUntil(today, g.TargetDate)
	completed := g.CurrentAmount >= g.TargetAmount

	return Progress{
		Percent:       percent,
		Remaining:     remaining,
		DaysRemaining: days,
		IsCompleted:   completed,
		IsOverdue:     days < 0 && !completed,
	}
}
