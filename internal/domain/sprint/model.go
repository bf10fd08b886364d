package sprint

import (
	"sort"
	"time"
)

// Sprint is a dated work window within a project. IsActive means "not yet
// completed"; several sprints may carry it at once historically, and the
// lifecycle manager does not retroactively repair that.
type Sprint struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	IsActive  bool      `json:"is_active"`
}

// IsCurrent reports whether today falls within [StartDate, EndDate].
func (s *Sprint) IsCurrent(now time.Time) bool {
	today := dateOnly(now)
	return !today.Before(dateOnly(s.StartDate)) && !today.After(dateOnly(s.EndDate))
}

// CanBeCompleted reports whether the sprint is active and past its end date.
// The lifecycle manager does not enforce this; completing early is permitted.
func (s *Sprint) CanBeCompleted(now time.Time) bool {
	return s.IsActive && dateOnly(now).After(dateOnly(s.EndDate))
}

// IsPast reports whether the sprint has been completed.
func (s *Sprint) IsPast() bool { return !s.IsActive }

// Partition splits sprints into active and archived sets, each ordered by
// start date ascending.
func Partition(all []*Sprint) (active, archived []*Sprint) {
	sorted := make([]*Sprint, len(all))
	copy(sorted, all)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})
	for _, s := range sorted {
		if s.IsActive {
			active = append(active, s)
		} else {
			archived = append(archived, s)
		}
	}
	return active, archived
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
