package athlete

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/letimartin/traincal/internal/telemetry/tracing"
	"github.com/letimartin/traincal/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type profileRepo interface {
	GetProfile(ctx context.Context) (*Profile, error)
}

var _ profileRepo = (*Repo)(nil)

type Handler struct {
	repo profileRepo
}

func NewHandler(repo profileRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/athlete/profile", h.HandleGetProfile).Methods("GET", "OPTIONS").Name("athlete-profile")
}

func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.athlete.getProfile")
	defer span.End()

	profile, err := h.repo.GetProfile(ctx)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}
		log.Errorf("get athlete profile: %s", err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	profileJson, err := json.Marshal(profile)
	if err != nil {
		log.Errorf("marshal athlete profile: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, profileJson)
}
