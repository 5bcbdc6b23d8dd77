package services

import (
	"slices"
	"time"

	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/models"
)

// NextHearing picks the hearing a case is "at": the earliest one dated at or
// after now, or when every hearing is past, the latest one. Equal dates keep
// their insertion order.
func NextHearing(hearings []models.Hearing, now time.Time) (models.Hearing, bool) {
	if len(hearings) == 0 {
		return models.Hearing{}, false
	}

	sorted := slices.Clone(hearings)
	slices.SortStableFunc(sorted, func(a, b models.Hearing) int {
		return a.Date.Compare(b.Date.Time)
	})

	for _, h := range sorted {
		if !h.Date.Before(now) {
			return h, true
		}
	}
	return sorted[len(sorted)-1], true
}

// LastHearing is the positional default: the most recently added hearing
func LastHearing(hearings []models.Hearing) (models.Hearing, bool) {
	if len(hearings) == 0 {
		return models.Hearing{}, false
	}
	return hearings[len(hearings)-1], true
}

// Scheduler binds NextHearing to a clock read once per call
type Scheduler struct {
	now func() time.Time
}

func NewScheduler(now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{now: now}
}

// NextEvent returns the current hearing for the dashboard and notices
func (s *Scheduler) NextEvent(hearings []models.Hearing) (models.Hearing, bool) {
	return NextHearing(hearings, s.now())
}

// Now exposes the scheduler clock to collaborators that must agree with it
func (s *Scheduler) Now() time.Time {
	return s.now()
}
