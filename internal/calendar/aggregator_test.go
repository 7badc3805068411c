package calendar

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshotItems() []Item {
	return []Item{
		{
			ID: 1, Type: ItemTypeWorkout, Date: "2026-01-19", Title: "Series cortas",
			Sport: "running", Duration: "1h 15m", Zone: "Z4", TSS: 85, Status: WorkoutStatusDone,
		},
		{
			ID: 2, Type: ItemTypeWorkout, Date: "2026-01-20", Title: "Rodaje suave",
			Sport: "running", Duration: "45m", Zone: "Z2", TSS: 40,
		},
		{
			ID: 3, Type: ItemTypeHealth, Date: "2026-01-20", EndDate: "2026-01-22",
			Title: "Viaje de trabajo", Restriction: "sin bici",
		},
		{
			ID: 4, Type: ItemTypeRace, Date: "2026-02-15", Title: "Media de Madrid",
			Priority: "A",
		},
		{
			ID: 5, Type: ItemTypeSocial, Date: "2026-01-20", Title: "Cena con el club",
			Impact: "low",
		},
	}
}

func newTestSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	s, err := NewSnapshot(testSnapshotItems())
	require.NoError(t, err)
	return s
}

func TestNewSnapshot(t *testing.T) {
	s := newTestSnapshot(t)
	assert.Equal(t, 5, s.Size())

	// workout without explicit status gets the default
	items := s.Items()
	assert.Equal(t, WorkoutStatusDone, items[0].Status)
	assert.Equal(t, WorkoutStatusPlanned, items[1].Status)

	// non-workouts stay without status
	assert.Empty(t, items[2].Status)
}

func TestNewSnapshot_duplicateID(t *testing.T) {
	items := testSnapshotItems()
	items = append(items, Item{ID: 3, Type: ItemTypeSocial, Date: "2026-03-01", Title: gofakeit.Sentence(3)})

	s, err := NewSnapshot(items)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestNewSnapshot_invalidItem(t *testing.T) {
	items := append(testSnapshotItems(), Item{ID: 99, Type: "fiesta", Date: "2026-03-01"})
	_, err := NewSnapshot(items)
	assert.ErrorIs(t, err, ErrUnknownItemType)
}

func TestSnapshot_ItemsOnDate(t *testing.T) {
	s := newTestSnapshot(t)

	// spanning item present mid-span, nothing else that day
	midSpan, err := s.ItemsOnDate("2026-01-21")
	require.NoError(t, err)
	require.Len(t, midSpan, 1)
	assert.Equal(t, int64(3), midSpan[0].ID)

	// span start day shares the date with a workout and a social event,
	// ordered workout < social < health by type weight
	busy, err := s.ItemsOnDate("2026-01-20")
	require.NoError(t, err)
	require.Len(t, busy, 3)
	assert.Equal(t, int64(2), busy[0].ID)
	assert.Equal(t, int64(5), busy[1].ID)
	assert.Equal(t, int64(3), busy[2].ID)

	// day after the span ends
	after, err := s.ItemsOnDate("2026-01-23")
	require.NoError(t, err)
	assert.Empty(t, after)

	_, err = s.ItemsOnDate("21-01-2026")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestSnapshot_ItemsOnDate_stableWithinType(t *testing.T) {
	items := []Item{
		{ID: 10, Type: ItemTypeWorkout, Date: "2026-01-20", Title: "AM ride"},
		{ID: 11, Type: ItemTypeWorkout, Date: "2026-01-20", Title: "PM run"},
		{ID: 12, Type: ItemTypeWorkout, Date: "2026-01-20", Title: "Core"},
	}
	s, err := NewSnapshot(items)
	require.NoError(t, err)

	dayItems, err := s.ItemsOnDate("2026-01-20")
	require.NoError(t, err)
	require.Len(t, dayItems, 3)
	assert.Equal(t, int64(10), dayItems[0].ID)
	assert.Equal(t, int64(11), dayItems[1].ID)
	assert.Equal(t, int64(12), dayItems[2].ID)
}

func TestSnapshot_MarkersForDate(t *testing.T) {
	s := newTestSnapshot(t)

	markers, err := s.MarkersForDate("2026-01-20", DefaultMaxMarkers)
	require.NoError(t, err)
	// collection order: workout first, then the health span, then social
	assert.Equal(t, []Color{"#00f2ff", "#33ff99", "#ff4444"}, markers)

	markers, err = s.MarkersForDate("2026-01-21", DefaultMaxMarkers)
	require.NoError(t, err)
	assert.Equal(t, []Color{"#33ff99"}, markers)

	markers, err = s.MarkersForDate("2026-01-25", DefaultMaxMarkers)
	require.NoError(t, err)
	assert.Empty(t, markers)

	_, err = s.MarkersForDate("not-a-date", DefaultMaxMarkers)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestSnapshot_MarkersForDate_dedupAndCap(t *testing.T) {
	items := []Item{
		{ID: 1, Type: ItemTypeWorkout, Date: "2026-01-20", Title: "AM"},
		{ID: 2, Type: ItemTypeWorkout, Date: "2026-01-20", Title: "PM"},
		{ID: 3, Type: ItemTypeRace, Date: "2026-01-20", Title: "Cross"},
		{ID: 4, Type: ItemTypeSocial, Date: "2026-01-20", Title: "Cena"},
		{ID: 5, Type: ItemTypeHealth, Date: "2026-01-20", Title: "Fisio"},
	}
	s, err := NewSnapshot(items)
	require.NoError(t, err)

	// two workouts produce a single workout marker
	markers, err := s.MarkersForDate("2026-01-20", DefaultMaxMarkers)
	require.NoError(t, err)
	assert.Equal(t, []Color{"#00f2ff", "#ffcc00", "#ff4444", "#33ff99"}, markers)

	capped, err := s.MarkersForDate("2026-01-20", 2)
	require.NoError(t, err)
	assert.Equal(t, []Color{"#00f2ff", "#ffcc00"}, capped)

	// non-positive cap falls back to the default
	fallback, err := s.MarkersForDate("2026-01-20", 0)
	require.NoError(t, err)
	assert.Len(t, fallback, 4)
}

func TestWeekRange(t *testing.T) {
	// a Monday anchor gives the ISO week
	week, err := WeekRange("2026-01-19")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2026-01-19", "2026-01-20", "2026-01-21", "2026-01-22",
		"2026-01-23", "2026-01-24", "2026-01-25",
	}, week)

	// a Wednesday anchor starts on the Wednesday, no snapping back
	week, err = WeekRange("2026-01-21")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-21", week[0])
	assert.Equal(t, "2026-01-27", week[6])
	assert.Len(t, week, 7)

	// month boundary
	week, err = WeekRange("2026-01-29")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2026-01-29", "2026-01-30", "2026-01-31", "2026-02-01",
		"2026-02-02", "2026-02-03", "2026-02-04",
	}, week)

	_, err = WeekRange("2026-1-19")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestMondayOf(t *testing.T) {
	for date, wantMonday := range map[string]string{
		"2026-01-19": "2026-01-19", // Monday itself
		"2026-01-21": "2026-01-19", // Wednesday
		"2026-01-25": "2026-01-19", // Sunday belongs to the same ISO week
		"2026-01-26": "2026-01-26",
		"2026-02-01": "2026-01-26", // Sunday across a month boundary
	} {
		monday, err := MondayOf(date)
		require.NoError(t, err)
		assert.Equal(t, wantMonday, monday, "monday of %s", date)
	}

	_, err := MondayOf("whenever")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestSnapshot_WeeklySummary(t *testing.T) {
	s := newTestSnapshot(t)

	week, err := WeekRange("2026-01-19")
	require.NoError(t, err)

	// default scope counts all workouts in the collection
	summary, err := s.WeeklySummary(week, SummaryParams{})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Sessions)
	assert.Equal(t, 125, summary.TSS)
	assert.Equal(t, "2h 00m", summary.Hours)
	assert.Equal(t, 1, summary.Restrictions)
	assert.Equal(t, "27 días para: Media de Madrid", summary.KeyRace)
}

func TestSnapshot_WeeklySummary_scopedToWeek(t *testing.T) {
	items := testSnapshotItems()
	// workout outside the inspected week
	items = append(items, Item{
		ID: 6, Type: ItemTypeWorkout, Date: "2026-02-02", Title: "Tirada larga",
		Duration: "2h", TSS: 120,
	})
	s, err := NewSnapshot(items)
	require.NoError(t, err)

	week, err := WeekRange("2026-01-19")
	require.NoError(t, err)

	scoped, err := s.WeeklySummary(week, SummaryParams{ScopeToWeek: true})
	require.NoError(t, err)
	assert.Equal(t, 2, scoped.Sessions)
	assert.Equal(t, 125, scoped.TSS)
	assert.Equal(t, "2h 00m", scoped.Hours)

	unscoped, err := s.WeeklySummary(week, SummaryParams{})
	require.NoError(t, err)
	assert.Equal(t, 3, unscoped.Sessions)
	assert.Equal(t, 245, unscoped.TSS)
	assert.Equal(t, "4h 00m", unscoped.Hours)

	// restrictions count the whole collection either way
	assert.Equal(t, 1, scoped.Restrictions)
	assert.Equal(t, 1, unscoped.Restrictions)
}

func TestSnapshot_WeeklySummary_keyRace(t *testing.T) {
	s := newTestSnapshot(t)
	week, err := WeekRange("2026-01-19")
	require.NoError(t, err)

	// explicit today overrides the week start
	summary, err := s.WeeklySummary(week, SummaryParams{Today: "2026-02-14"})
	require.NoError(t, err)
	assert.Equal(t, "1 días para: Media de Madrid", summary.KeyRace)

	// race day itself is not "upcoming" anymore
	summary, err = s.WeeklySummary(week, SummaryParams{Today: "2026-02-15"})
	require.NoError(t, err)
	assert.Empty(t, summary.KeyRace)

	_, err = s.WeeklySummary(week, SummaryParams{Today: "someday"})
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestSnapshot_WeeklySummary_nearestRaceWins(t *testing.T) {
	items := []Item{
		{ID: 1, Type: ItemTypeRace, Date: "2026-05-10", Title: "Maratón"},
		{ID: 2, Type: ItemTypeRace, Date: "2026-02-15", Title: "Media de Madrid"},
	}
	s, err := NewSnapshot(items)
	require.NoError(t, err)

	week, err := WeekRange("2026-01-19")
	require.NoError(t, err)

	summary, err := s.WeeklySummary(week, SummaryParams{})
	require.NoError(t, err)
	assert.Equal(t, "27 días para: Media de Madrid", summary.KeyRace)
}

func TestSnapshot_WeeklySummary_invalidWeekDate(t *testing.T) {
	s := newTestSnapshot(t)
	_, err := s.WeeklySummary([]string{"2026-01-19", "bad"}, SummaryParams{})
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestSnapshot_MonthGrid(t *testing.T) {
	s := newTestSnapshot(t)

	cells, err := s.MonthGrid(2026, time.January)
	require.NoError(t, err)
	require.Len(t, cells, 31)

	assert.Equal(t, 1, cells[0].Day)
	assert.Equal(t, "2026-01-01", cells[0].Date)
	assert.Empty(t, cells[0].Markers)

	jan20 := cells[19]
	assert.Equal(t, "2026-01-20", jan20.Date)
	assert.Equal(t, []Color{"#00f2ff", "#33ff99", "#ff4444"}, jan20.Markers)

	jan21 := cells[20]
	assert.Equal(t, []Color{"#33ff99"}, jan21.Markers)

	feb, err := s.MonthGrid(2026, time.February)
	require.NoError(t, err)
	assert.Len(t, feb, 28)
	assert.Equal(t, []Color{"#ffcc00"}, feb[14].Markers) // race on the 15th

	leapFeb, err := s.MonthGrid(2028, time.February)
	require.NoError(t, err)
	assert.Len(t, leapFeb, 29)

	_, err = s.MonthGrid(2026, time.Month(13))
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestSnapshot_WithWorkoutStatus(t *testing.T) {
	s := newTestSnapshot(t)

	updated, err := s.WithWorkoutStatus(2, WorkoutStatusDone)
	require.NoError(t, err)

	// new snapshot carries the change
	items := updated.Items()
	assert.Equal(t, WorkoutStatusDone, items[1].Status)

	// original snapshot untouched
	assert.Equal(t, WorkoutStatusPlanned, s.Items()[1].Status)

	_, err = s.WithWorkoutStatus(999, WorkoutStatusDone)
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = s.WithWorkoutStatus(4, WorkoutStatusSkipped)
	assert.ErrorIs(t, err, ErrNotAWorkout)

	_, err = s.WithWorkoutStatus(2, "quizas")
	assert.Error(t, err)
}

func TestSnapshot_Workouts(t *testing.T) {
	s := newTestSnapshot(t)
	workouts := s.Workouts()
	require.Len(t, workouts, 2)
	assert.Equal(t, int64(1), workouts[0].ID)
	assert.Equal(t, int64(2), workouts[1].ID)
}

func TestDurationMinutes(t *testing.T) {
	assert.Equal(t, 90, durationMinutes("1h 30m"))
	assert.Equal(t, 45, durationMinutes("45m"))
	assert.Equal(t, 120, durationMinutes("2h"))
	assert.Equal(t, 0, durationMinutes(""))
	assert.Equal(t, 60, durationMinutes("1h con cafe")) // free text tokens skipped
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "0h 00m", formatHours(0))
	assert.Equal(t, "0h 45m", formatHours(45))
	assert.Equal(t, "2h 05m", formatHours(125))
	assert.Equal(t, "10h 00m", formatHours(600))
}
