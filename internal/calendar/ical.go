package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/letimartin/traincal/internal/telemetry/tracing"

	ics "github.com/arran4/golang-ical"
)

// ExportICS renders the whole calendar as an iCalendar feed, so athletes can
// subscribe from their regular calendar apps. Workouts and single-moment
// events with a clock time become timed events, everything else is all-day
// (restriction windows span their whole [Date, EndDate] range).
func (s *Service) ExportICS(ctx context.Context) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.calendar.exportICS")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//traincal//calendar//ES")

	for _, item := range snapshot.Items() {
		event := cal.AddEvent(fmt.Sprintf("item-%d@traincal", item.ID))
		event.SetSummary(item.Title)
		if item.Description != "" {
			event.SetDescription(item.Description)
		}

		start, err := parseDate(item.Date)
		if err != nil {
			return nil, err
		}

		if item.Time != "" {
			clock, err := time.Parse("15:04", item.Time)
			if err != nil {
				return nil, fmt.Errorf("item %d: invalid time %q", item.ID, item.Time)
			}
			startAt := start.Add(
				time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute,
			)
			event.SetStartAt(startAt)
			event.SetEndAt(startAt.Add(time.Hour))
			continue
		}

		end := start.AddDate(0, 0, 1)
		if item.EndDate != "" {
			spanEnd, err := parseDate(item.EndDate)
			if err != nil {
				return nil, err
			}
			// DTEND is exclusive in the iCalendar format
			end = spanEnd.AddDate(0, 0, 1)
		}
		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(end)
	}

	return []byte(cal.Serialize()), nil
}
