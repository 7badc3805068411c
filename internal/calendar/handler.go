package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/letimartin/traincal/internal/telemetry/metrics"
	"github.com/letimartin/traincal/internal/telemetry/tracing"
	"github.com/letimartin/traincal/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=calendar_test

type service interface {
	DayItems(ctx context.Context, date string) ([]Item, error)
	Markers(ctx context.Context, date string, maxMarkers int) ([]Color, error)
	Week(ctx context.Context, anchor string) ([]DayBucket, error)
	WeekSummary(ctx context.Context, anchor string, params SummaryParams) (Summary, error)
	MonthGrid(ctx context.Context, year int, month time.Month) ([]DayCell, error)
	Workouts(ctx context.Context) ([]Item, error)
	Add(ctx context.Context, item Item) (*Item, error)
	UpdateWorkoutStatus(ctx context.Context, id int64, status WorkoutStatus) error
	Delete(ctx context.Context, id int64) error
	ExportICS(ctx context.Context) ([]byte, error)
}

var _ service = (*Service)(nil)

type Handler struct {
	service service
	metrics *metrics.Manager
}

func NewHandler(service service, metrics *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metrics,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	calRouter := r.PathPrefix("/calendar").Subrouter()
	calRouter.HandleFunc("/day/{date}", h.HandleDayItems).Methods("GET", "OPTIONS").Name("calendar-day")
	calRouter.HandleFunc("/day/{date}/markers", h.HandleMarkers).Methods("GET", "OPTIONS").Name("calendar-markers")
	calRouter.HandleFunc("/week/{anchor}", h.HandleWeek).Methods("GET", "OPTIONS").Name("calendar-week")
	calRouter.HandleFunc("/week/{anchor}/summary", h.HandleWeekSummary).Methods("GET", "OPTIONS").Name("calendar-week-summary")
	calRouter.HandleFunc("/month/{year}/{month}", h.HandleMonthGrid).Methods("GET", "OPTIONS").Name("calendar-month")
	calRouter.HandleFunc("/workouts", h.HandleWorkouts).Methods("GET", "OPTIONS").Name("calendar-workouts")
	calRouter.HandleFunc("/workout/{id}/status", h.HandleUpdateWorkoutStatus).Methods("PUT", "OPTIONS").Name("calendar-workout-status")
	calRouter.HandleFunc("/export.ics", h.HandleExportICS).Methods("GET", "OPTIONS").Name("calendar-export")
	calRouter.HandleFunc("/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("calendar-delete")
	calRouter.HandleFunc("", h.HandleAdd).Methods("POST", "OPTIONS").Name("calendar-add")
}

// writeDomainError maps the typed calendar errors to status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidDateFormat), errors.Is(err, ErrInvalidDateRange):
		http.Error(w, "invalid date", http.StatusBadRequest)
	case errors.Is(err, ErrUnknownItemType):
		http.Error(w, "unknown item type", http.StatusBadRequest)
	case errors.Is(err, ErrNotAWorkout):
		http.Error(w, "item is not a workout", http.StatusBadRequest)
	case errors.Is(err, ErrItemNotFound):
		http.Error(w, "item not found", http.StatusNotFound)
	case errors.Is(err, ErrDuplicateID):
		http.Error(w, "duplicate item id", http.StatusConflict)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) HandleDayItems(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.calendar.dayItems")
	defer span.End()

	date := mux.Vars(r)["date"]
	dayItems, err := h.service.DayItems(ctx, date)
	if err != nil {
		log.Errorf("get day items [%s]: %s", date, err)
		writeDomainError(w, err)
		return
	}
	if dayItems == nil {
		dayItems = []Item{}
	}

	itemsJson, err := json.Marshal(dayItems)
	if err != nil {
		log.Errorf("marshal day items: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, itemsJson)
}

func (h *Handler) HandleMarkers(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.calendar.markers")
	defer span.End()

	maxMarkers := DefaultMaxMarkers
	if maxParam := r.URL.Query().Get("max"); maxParam != "" {
		parsed, err := strconv.Atoi(maxParam)
		if err != nil {
			http.Error(w, "invalid max param", http.StatusBadRequest)
			return
		}
		maxMarkers = parsed
	}

	date := mux.Vars(r)["date"]
	markers, err := h.service.Markers(ctx, date, maxMarkers)
	if err != nil {
		log.Errorf("get markers [%s]: %s", date, err)
		writeDomainError(w, err)
		return
	}
	if markers == nil {
		markers = []Color{}
	}

	markersJson, err := json.Marshal(markers)
	if err != nil {
		log.Errorf("marshal markers: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, markersJson)
}

func (h *Handler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.calendar.week")
	defer span.End()

	anchor := mux.Vars(r)["anchor"]
	buckets, err := h.service.Week(ctx, anchor)
	if err != nil {
		log.Errorf("get week [%s]: %s", anchor, err)
		writeDomainError(w, err)
		return
	}

	bucketsJson, err := json.Marshal(buckets)
	if err != nil {
		log.Errorf("marshal week buckets: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, bucketsJson)
}

func (h *Handler) HandleWeekSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.calendar.weekSummary")
	defer span.End()

	anchor := mux.Vars(r)["anchor"]
	params := SummaryParams{
		ScopeToWeek: r.URL.Query().Get("scope") == "week",
		Today:       r.URL.Query().Get("today"),
	}

	summary, err := h.service.WeekSummary(ctx, anchor, params)
	if err != nil {
		log.Errorf("get week summary [%s]: %s", anchor, err)
		writeDomainError(w, err)
		return
	}

	summaryJson, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal week summary: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, summaryJson)
}

func (h *Handler) HandleMonthGrid(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.calendar.monthGrid")
	defer span.End()

	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		http.Error(w, "invalid year", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	cells, err := h.service.MonthGrid(ctx, year, time.Month(month))
	if err != nil {
		log.Errorf("get month grid [%d-%d]: %s", year, month, err)
		writeDomainError(w, err)
		return
	}

	cellsJson, err := json.Marshal(cells)
	if err != nil {
		log.Errorf("marshal month grid: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cellsJson)
}

func (h *Handler) HandleWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.calendar.workouts")
	defer span.End()

	workouts, err := h.service.Workouts(ctx)
	if err != nil {
		log.Errorf("list workouts: %s", err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}
	if workouts == nil {
		workouts = []Item{}
	}

	workoutsJson, err := json.Marshal(workouts)
	if err != nil {
		log.Errorf("marshal workouts: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resJson := fmt.Sprintf(`{"workouts": %s, "total": %d}`, workoutsJson, len(workouts))
	pkg.WriteJSONResponseOK(w, resJson)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.calendar.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var item Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Errorf("add item, unmarshal json params: %s", err)
		http.Error(w, "add item failed", http.StatusBadRequest)
		return
	}

	added, err := h.service.Add(ctx, item)
	if err != nil {
		log.Errorf("add item: %s", err)
		writeDomainError(w, err)
		return
	}

	h.metrics.CounterItemsAdded.Inc()

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal added item: %s", err)
		http.Error(w, "error, failed to add new item", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (h *Handler) HandleUpdateWorkoutStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.calendar.updateWorkoutStatus")
	defer span.End()

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	type statusRequest struct {
		Status WorkoutStatus `json:"status"`
	}
	var statusReq statusRequest
	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		log.Errorf("update workout status, unmarshal json params: %s", err)
		http.Error(w, "update status failed", http.StatusBadRequest)
		return
	}
	if !statusReq.Status.IsValid() {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateWorkoutStatus(ctx, id, statusReq.Status); err != nil {
		log.Errorf("update workout %d status: %s", id, err)
		writeDomainError(w, err)
		return
	}

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"updated": %d, "status": "%s"}`, id, statusReq.Status))
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.calendar.delete")
	defer span.End()

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		log.Errorf("delete item %d: %s", id, err)
		writeDomainError(w, err)
		return
	}

	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"deleted": %d}`, id))
}

func (h *Handler) HandleExportICS(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.calendar.exportICS")
	defer span.End()

	feed, err := h.service.ExportICS(ctx)
	if err != nil {
		log.Errorf("export ics: %s", err)
		http.Error(w, "failed to export calendar", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.ICal, feed)
}
