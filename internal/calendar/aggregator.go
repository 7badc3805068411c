package calendar

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DefaultMaxMarkers caps the number of marker dots rendered per day cell.
// It is a display budget, not a data limit.
const DefaultMaxMarkers = 4

// Color is a marker display color, e.g. "#00f2ff".
type Color string

// Snapshot is an immutable view over the full item collection. All derived
// views (day listings, markers, summaries, month grids) are recomputed from
// it on demand, so concurrent readers can share one snapshot freely.
// Mutation produces a new snapshot, see WithWorkoutStatus.
type Snapshot struct {
	items []Item
}

// NewSnapshot validates the items and builds a snapshot. It fails with
// ErrDuplicateID when two items share an id, and with the item's own
// validation error otherwise. Workouts without a status default to
// "planificado".
func NewSnapshot(items []Item) (*Snapshot, error) {
	seen := make(map[int64]struct{}, len(items))
	owned := make([]Item, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", item.ID, err)
		}
		if _, ok := seen[item.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, item.ID)
		}
		seen[item.ID] = struct{}{}

		if item.IsWorkout() && item.Status == "" {
			item.Status = WorkoutStatusPlanned
		}
		owned[i] = item
	}
	return &Snapshot{items: owned}, nil
}

// Items returns a copy of the underlying collection, in original order.
func (s *Snapshot) Items() []Item {
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// Size returns the number of items in the snapshot.
func (s *Snapshot) Size() int {
	return len(s.items)
}

// Workouts returns the workout items only, in original order.
func (s *Snapshot) Workouts() []Item {
	var workouts []Item
	for _, item := range s.items {
		if item.IsWorkout() {
			workouts = append(workouts, item)
		}
	}
	return workouts
}

// ItemsOnDate returns the items present on the given date: anchored there, or
// spanning over it via their end date. Result is ordered by ascending type
// weight (workout, race, social, health); ties keep the original collection
// order.
func (s *Snapshot) ItemsOnDate(date string) ([]Item, error) {
	if err := CheckDate(date); err != nil {
		return nil, err
	}

	var dayItems []Item
	for _, item := range s.items {
		if item.OccursOn(date) {
			dayItems = append(dayItems, item)
		}
	}

	sort.SliceStable(dayItems, func(i, j int) bool {
		return itemTypeInfos[dayItems[i].Type].Weight < itemTypeInfos[dayItems[j].Type].Weight
	})

	return dayItems, nil
}

// MarkersForDate returns the marker colors for the distinct item types
// present on the date, in the order the types are first seen in the
// collection, truncated to maxMarkers entries. Non-positive maxMarkers
// falls back to DefaultMaxMarkers.
func (s *Snapshot) MarkersForDate(date string, maxMarkers int) ([]Color, error) {
	if err := CheckDate(date); err != nil {
		return nil, err
	}
	if maxMarkers <= 0 {
		maxMarkers = DefaultMaxMarkers
	}

	seenTypes := make(map[ItemType]struct{})
	var markers []Color
	for _, item := range s.items {
		if !item.OccursOn(date) {
			continue
		}
		if _, ok := seenTypes[item.Type]; ok {
			continue
		}
		if len(markers) >= maxMarkers {
			break
		}
		seenTypes[item.Type] = struct{}{}
		markers = append(markers, Color(itemTypeInfos[item.Type].Color))
	}

	return markers, nil
}

// WeekRange returns the 7 consecutive dates starting from the anchor date.
// The anchor is NOT normalized to the Monday of its week: callers that want
// an ISO week must pass a Monday (or use MondayOf first). The calendar UI
// always feeds Mondays in, so the two behaviors coincide there.
func WeekRange(anchor string) ([]string, error) {
	start, err := parseDate(anchor)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 7)
	for i := 0; i < 7; i++ {
		dates[i] = start.AddDate(0, 0, i).Format(dateLayout)
	}
	return dates, nil
}

// MondayOf returns the Monday of the ISO week containing the given date.
func MondayOf(date string) (string, error) {
	t, err := parseDate(date)
	if err != nil {
		return "", err
	}

	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	return t.AddDate(0, 0, 1-weekday).Format(dateLayout), nil
}

// Summary holds the weekly impact numbers shown under the calendar.
type Summary struct {
	Sessions     int    `json:"sessions"`
	Hours        string `json:"hours"`
	TSS          int    `json:"tss"`
	Restrictions int    `json:"restrictions"`
	KeyRace      string `json:"keyRace"`
}

// SummaryParams controls the weekly summary computation.
type SummaryParams struct {
	// ScopeToWeek counts sessions/hours/tss only for workouts anchored within
	// the supplied week dates. When false, the whole collection counts, which
	// is what the mobile calendar shows.
	ScopeToWeek bool
	// Today is the reference date for the key race countdown. Empty means the
	// first of the supplied week dates.
	Today string
}

// WeeklySummary computes the impact summary for the given week dates.
// Restrictions are always counted over the whole collection, matching the
// product behavior: an injury or travel window matters regardless of the
// week being looked at.
func (s *Snapshot) WeeklySummary(weekDates []string, params SummaryParams) (Summary, error) {
	for _, date := range weekDates {
		if err := CheckDate(date); err != nil {
			return Summary{}, err
		}
	}

	today := params.Today
	if today == "" && len(weekDates) > 0 {
		today = weekDates[0]
	}
	if today != "" {
		if err := CheckDate(today); err != nil {
			return Summary{}, err
		}
	}

	inWeek := make(map[string]struct{}, len(weekDates))
	for _, date := range weekDates {
		inWeek[date] = struct{}{}
	}

	var summary Summary
	var totalMinutes int
	for _, item := range s.items {
		if item.Type == ItemTypeHealth && item.Restriction != "" {
			summary.Restrictions++
		}

		if !item.IsWorkout() {
			continue
		}
		if params.ScopeToWeek {
			if _, ok := inWeek[item.Date]; !ok {
				continue
			}
		}

		summary.Sessions++
		summary.TSS += item.TSS
		totalMinutes += durationMinutes(item.Duration)
	}

	summary.Hours = formatHours(totalMinutes)
	summary.KeyRace = s.keyRace(today)

	return summary, nil
}

// keyRace describes the nearest race strictly after the reference date, as
// "<N> días para: <title>". Empty string when there is no upcoming race.
func (s *Snapshot) keyRace(today string) string {
	if today == "" {
		return ""
	}

	var nearest *Item
	for i, item := range s.items {
		if item.Type != ItemTypeRace || item.Date <= today {
			continue
		}
		if nearest == nil || item.Date < nearest.Date {
			nearest = &s.items[i]
		}
	}
	if nearest == nil {
		return ""
	}

	todayT, err := parseDate(today)
	if err != nil {
		return ""
	}
	raceT, err := parseDate(nearest.Date)
	if err != nil {
		return ""
	}

	days := int(raceT.Sub(todayT).Hours() / 24)
	return fmt.Sprintf("%d días para: %s", days, nearest.Title)
}

// DayCell is one cell of the month grid view.
type DayCell struct {
	Day     int     `json:"day"`
	Date    string  `json:"date"`
	Markers []Color `json:"markers"`
}

// MonthGrid returns one cell per calendar day of the month, each annotated
// with up to DefaultMaxMarkers marker colors.
func (s *Snapshot) MonthGrid(year int, month time.Month) ([]DayCell, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month %d", ErrInvalidDateFormat, month)
	}

	// day 0 of the next month is the last day of this one
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	cells := make([]DayCell, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		markers, err := s.MarkersForDate(date, DefaultMaxMarkers)
		if err != nil {
			return nil, err
		}
		cells = append(cells, DayCell{
			Day:     day,
			Date:    date,
			Markers: markers,
		})
	}
	return cells, nil
}

// WithWorkoutStatus returns a new snapshot with the given workout's status
// replaced. The receiver is left untouched, readers holding it are not
// affected.
func (s *Snapshot) WithWorkoutStatus(id int64, status WorkoutStatus) (*Snapshot, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid workout status: %q", status)
	}

	for i, item := range s.items {
		if item.ID != id {
			continue
		}
		if !item.IsWorkout() {
			return nil, fmt.Errorf("%w: %d is %s", ErrNotAWorkout, id, item.Type)
		}

		items := make([]Item, len(s.items))
		copy(items, s.items)
		items[i].Status = status
		return &Snapshot{items: items}, nil
	}

	return nil, fmt.Errorf("%w: %d", ErrItemNotFound, id)
}

// durationMinutes parses scheduled durations like "1h 30m", "45m" or "2h".
// Unparseable tokens are skipped, the schedule strings are free text.
func durationMinutes(duration string) int {
	var minutes int
	for _, token := range strings.Fields(duration) {
		switch {
		case strings.HasSuffix(token, "h"):
			if h, err := strconv.Atoi(strings.TrimSuffix(token, "h")); err == nil {
				minutes += h * 60
			}
		case strings.HasSuffix(token, "m"):
			if m, err := strconv.Atoi(strings.TrimSuffix(token, "m")); err == nil {
				minutes += m
			}
		}
	}
	return minutes
}

func formatHours(totalMinutes int) string {
	return fmt.Sprintf("%dh %02dm", totalMinutes/60, totalMinutes%60)
}
