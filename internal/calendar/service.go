package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/letimartin/traincal/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type itemsRepo interface {
	Add(ctx context.Context, item Item) (*Item, error)
	Get(ctx context.Context, id int64) (*Item, error)
	List(ctx context.Context, params ListParams) ([]Item, error)
	UpdateWorkoutStatus(ctx context.Context, id int64, status WorkoutStatus) error
	Delete(ctx context.Context, id int64) error
}

var _ itemsRepo = (*Repo)(nil)

const (
	cacheSizeBytes     = 1024 * 1024
	cacheExpireSeconds = 5 * 60
)

// DayBucket groups the items of one date within a week view.
type DayBucket struct {
	Date  string `json:"date"`
	Items []Item `json:"items"`
}

// Service answers the calendar queries over the current store content.
// Month grids and weekly summaries are cached; every write resets the
// cache, derived views are cheap to recompute.
type Service struct {
	repo  itemsRepo
	cache *freecache.Cache
}

func NewService(repo itemsRepo) *Service {
	return &Service{
		repo:  repo,
		cache: freecache.NewCache(cacheSizeBytes),
	}
}

func (s *Service) snapshot(ctx context.Context) (*Snapshot, error) {
	items, err := s.repo.List(ctx, ListParams{})
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	snapshot, err := NewSnapshot(items)
	if err != nil {
		return nil, fmt.Errorf("build snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *Service) DayItems(ctx context.Context, date string) (_ []Item, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.calendar.dayItems")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	if err := CheckDate(date); err != nil {
		return nil, err
	}

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.ItemsOnDate(date)
}

func (s *Service) Markers(ctx context.Context, date string, maxMarkers int) (_ []Color, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.calendar.markers")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", date))

	if err := CheckDate(date); err != nil {
		return nil, err
	}

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.MarkersForDate(date, maxMarkers)
}

// Week returns one bucket per date of the week starting at the anchor.
func (s *Service) Week(ctx context.Context, anchor string) (_ []DayBucket, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.calendar.week")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("anchor", anchor))

	weekDates, err := WeekRange(anchor)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	buckets := make([]DayBucket, 0, len(weekDates))
	for _, date := range weekDates {
		dayItems, err := snapshot.ItemsOnDate(date)
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, DayBucket{
			Date:  date,
			Items: dayItems,
		})
	}
	return buckets, nil
}

func (s *Service) WeekSummary(ctx context.Context, anchor string, params SummaryParams) (_ Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.calendar.weekSummary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("anchor", anchor))
	span.SetAttributes(attribute.Bool("scope-to-week", params.ScopeToWeek))

	cacheKey := []byte(fmt.Sprintf("summary::%s::%t::%s", anchor, params.ScopeToWeek, params.Today))
	if cached, err := s.cache.Get(cacheKey); err == nil {
		var summary Summary
		if err := json.Unmarshal(cached, &summary); err == nil {
			span.SetAttributes(attribute.Bool("from-cache", true))
			return summary, nil
		}
		log.Errorf("week summary [%s]: unmarshal cached value: %s", anchor, err)
	}

	weekDates, err := WeekRange(anchor)
	if err != nil {
		return Summary{}, err
	}

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return Summary{}, err
	}

	summary, err := snapshot.WeeklySummary(weekDates, params)
	if err != nil {
		return Summary{}, err
	}

	if summaryJson, err := json.Marshal(summary); err == nil {
		if err := s.cache.Set(cacheKey, summaryJson, cacheExpireSeconds); err != nil {
			log.Errorf("week summary [%s]: cache set: %s", anchor, err)
		}
	}

	return summary, nil
}

func (s *Service) MonthGrid(ctx context.Context, year int, month time.Month) (_ []DayCell, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.calendar.monthGrid")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("year", year))
	span.SetAttributes(attribute.Int("month", int(month)))

	cacheKey := []byte(fmt.Sprintf("grid::%04d-%02d", year, month))
	if cached, err := s.cache.Get(cacheKey); err == nil {
		var cells []DayCell
		if err := json.Unmarshal(cached, &cells); err == nil {
			span.SetAttributes(attribute.Bool("from-cache", true))
			return cells, nil
		}
		log.Errorf("month grid [%04d-%02d]: unmarshal cached value: %s", year, month, err)
	}

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	cells, err := snapshot.MonthGrid(year, month)
	if err != nil {
		return nil, err
	}

	if cellsJson, err := json.Marshal(cells); err == nil {
		if err := s.cache.Set(cacheKey, cellsJson, cacheExpireSeconds); err != nil {
			log.Errorf("month grid [%04d-%02d]: cache set: %s", year, month, err)
		}
	}

	return cells, nil
}

func (s *Service) Workouts(ctx context.Context) (_ []Item, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.calendar.workouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workoutType := ItemTypeWorkout
	workouts, err := s.repo.List(ctx, ListParams{Type: &workoutType})
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}

func (s *Service) Add(ctx context.Context, item Item) (_ *Item, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.calendar.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("type", item.Type.String()))

	if err := item.Validate(); err != nil {
		return nil, err
	}
	if item.IsWorkout() && item.Status == "" {
		item.Status = WorkoutStatusPlanned
	}

	added, err := s.repo.Add(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("add item: %w", err)
	}

	s.cache.Clear()
	return added, nil
}

func (s *Service) UpdateWorkoutStatus(ctx context.Context, id int64, status WorkoutStatus) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.calendar.updateWorkoutStatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("item.id", id))

	if !status.IsValid() {
		return fmt.Errorf("invalid workout status: %q", status)
	}

	if err := s.repo.UpdateWorkoutStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update workout status: %w", err)
	}

	s.cache.Clear()
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.calendar.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("item.id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	s.cache.Clear()
	return nil
}

// ResetCache drops all cached derived views. Ran nightly so that day-relative
// values (the key race countdown) never survive a date change.
func (s *Service) ResetCache() {
	s.cache.Clear()
}
