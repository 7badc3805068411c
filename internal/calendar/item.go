package calendar

import (
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidDateFormat = errors.New("invalid date format, want YYYY-MM-DD")
	ErrInvalidDateRange  = errors.New("end date before start date")
	ErrUnknownItemType   = errors.New("unknown item type")
	ErrDuplicateID       = errors.New("duplicate item id")
	ErrItemNotFound      = errors.New("item not found")
	ErrNotAWorkout       = errors.New("item is not a workout")
)

// ItemType can be one of:
//   - workout
//   - race
//   - social
//   - health
type ItemType string

const (
	ItemTypeWorkout ItemType = "workout"
	ItemTypeRace    ItemType = "race"
	ItemTypeSocial  ItemType = "social"
	ItemTypeHealth  ItemType = "health"
)

func (it ItemType) String() string {
	return string(it)
}

func (it ItemType) IsValid() bool {
	switch it {
	case ItemTypeWorkout, ItemTypeRace, ItemTypeSocial, ItemTypeHealth:
		return true
	default:
		return false
	}
}

// TypeInfo holds the display attributes of an item type. The weight orders
// items of different types within the same day, lower comes first.
type TypeInfo struct {
	Label  string `json:"label"`
	Color  string `json:"color"`
	Weight int    `json:"weight"`
}

var itemTypeInfos = map[ItemType]TypeInfo{
	ItemTypeWorkout: {Label: "Entreno", Color: "#00f2ff", Weight: 1},
	ItemTypeRace:    {Label: "Carrera", Color: "#ffcc00", Weight: 2},
	ItemTypeSocial:  {Label: "Social", Color: "#ff4444", Weight: 3},
	ItemTypeHealth:  {Label: "Salud/Personal", Color: "#33ff99", Weight: 4},
}

// Info returns the display attributes for the type, or ErrUnknownItemType
// for a type outside the fixed set.
func (it ItemType) Info() (TypeInfo, error) {
	info, ok := itemTypeInfos[it]
	if !ok {
		return TypeInfo{}, fmt.Errorf("%w: %q", ErrUnknownItemType, it)
	}
	return info, nil
}

// WorkoutStatus is meaningful only on workout items.
type WorkoutStatus string

const (
	WorkoutStatusPlanned WorkoutStatus = "planificado"
	WorkoutStatusDone    WorkoutStatus = "hecho"
	WorkoutStatusSkipped WorkoutStatus = "saltado"
)

func (ws WorkoutStatus) String() string {
	return string(ws)
}

func (ws WorkoutStatus) IsValid() bool {
	switch ws {
	case WorkoutStatusPlanned, WorkoutStatusDone, WorkoutStatusSkipped:
		return true
	default:
		return false
	}
}

// Item is a single calendar entry: a workout, a race, a social event, or a
// health/travel restriction window. Dates are ISO YYYY-MM-DD strings, so
// lexicographic comparison matches chronological comparison. When EndDate is
// set, the item spans every date in [Date, EndDate] inclusive.
type Item struct {
	ID      int64    `json:"id"`
	Type    ItemType `json:"type"`
	Date    string   `json:"date"`
	EndDate string   `json:"endDate,omitempty"`
	Title   string   `json:"title"`

	// workout attributes
	Sport     string        `json:"sport,omitempty"`
	Duration  string        `json:"duration,omitempty"`
	Zone      string        `json:"zone,omitempty"`
	Intensity string        `json:"intensity,omitempty"`
	TSS       int           `json:"tss,omitempty"`
	Status    WorkoutStatus `json:"status,omitempty"`

	// race / social / health attributes
	Priority    string `json:"priority,omitempty"`
	Impact      string `json:"impact,omitempty"`
	Restriction string `json:"restriction,omitempty"`

	Time        string `json:"time,omitempty"`
	Description string `json:"description,omitempty"`
}

// IsWorkout reports whether the item is a workout.
func (i Item) IsWorkout() bool {
	return i.Type == ItemTypeWorkout
}

// OccursOn reports whether the item is present on the given date, either as
// its anchor date or anywhere within its [Date, EndDate] span.
func (i Item) OccursOn(date string) bool {
	if i.Date == date {
		return true
	}
	if i.EndDate != "" && date >= i.Date && date <= i.EndDate {
		return true
	}
	return false
}

// Validate checks the item invariants: known type, well formed dates, and
// EndDate not before Date. A workout without a status gets none here, the
// default is applied at snapshot creation.
func (i Item) Validate() error {
	if !i.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownItemType, i.Type)
	}
	if err := CheckDate(i.Date); err != nil {
		return err
	}
	if i.EndDate != "" {
		if err := CheckDate(i.EndDate); err != nil {
			return err
		}
		if i.EndDate < i.Date {
			return fmt.Errorf("%w: %s .. %s", ErrInvalidDateRange, i.Date, i.EndDate)
		}
	}
	if i.Status != "" && !i.Status.IsValid() {
		return fmt.Errorf("invalid workout status: %q", i.Status)
	}
	return nil
}

// CheckDate validates an ISO YYYY-MM-DD date string.
func CheckDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateFormat, date)
	}
	return nil
}

func parseDate(date string) (time.Time, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, date)
	}
	return t, nil
}
