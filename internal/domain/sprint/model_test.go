package sprint_test

import (
	"testing"
	"time"

	"github.com/sleipnirhq/sleipnir/internal/domain/sprint"
	"github.com/stretchr/testify/require"
)

func TestSprint_IsCurrent(t *testing.T) {
	sp := &sprint.Sprint{StartDate: day(1), EndDate: day(14)}

	require.True(t, sp.IsCurrent(day(1)), "start date is inclusive")
	require.True(t, sp.IsCurrent(day(7)))
	require.True(t, sp.IsCurrent(day(14).Add(23*time.Hour)), "end date is inclusive for the whole day")
	require.False(t, sp.IsCurrent(day(15)))
	require.False(t, sp.IsCurrent(day(1).Add(-time.Hour)))
}

func TestSprint_CanBeCompleted(t *testing.T) {
	active := &sprint.Sprint{StartDate: day(1), EndDate: day(14), IsActive: true}

	require.False(t, active.CanBeCompleted(day(14)), "not past the end date yet")
	require.True(t, active.CanBeCompleted(day(15)))

	done := &sprint.Sprint{StartDate: day(1), EndDate: day(14)}
	require.False(t, done.CanBeCompleted(day(15)), "completed sprints stay completed")
	require.True(t, done.IsPast())
	require.False(t, active.IsPast())
}

func TestPartition(t *testing.T) {
	s1 := &sprint.Sprint{ID: "s1", StartDate: day(1), EndDate: day(14)}
	s2 := &sprint.Sprint{ID: "s2", StartDate: day(15), EndDate: day(28), IsActive: true}
	s3 := &sprint.Sprint{ID: "s3", StartDate: day(8), EndDate: day(21), IsActive: true}

	active, archived := sprint.Partition([]*sprint.Sprint{s1, s2, s3})

	require.Len(t, active, 2)
	require.Equal(t, "s3", active[0].ID, "ordered by start date")
	require.Equal(t, "s2", active[1].ID)
	require.Len(t, archived, 1)
	require.Equal(t, "s1", archived[0].ID)

	active, archived = sprint.Partition(nil)
	require.Empty(t, active)
	require.Empty(t, archived)
}
