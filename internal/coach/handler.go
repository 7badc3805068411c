package coach

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/letimartin/traincal/internal/telemetry/metrics"
	"github.com/letimartin/traincal/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	api     Api
	metrics *metrics.Manager
}

func NewHandler(api Api, metrics *metrics.Manager) *Handler {
	return &Handler{
		api:     api,
		metrics: metrics,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	coachRouter := r.PathPrefix("/coach").Subrouter()
	coachRouter.HandleFunc("/messages", handler.HandleList).Methods("GET", "OPTIONS").Name("coach-messages")
	coachRouter.HandleFunc("/messages", handler.HandleAdd).Methods("POST").Name("new-coach-message")
	coachRouter.HandleFunc("/messages/{id}", handler.HandleDelete).Methods("DELETE").Name("delete-coach-message")
}

type addMessageRequest struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req addMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("add coach message failed, decode json error: %s", err)
		http.Error(w, "add message failed", http.StatusBadRequest)
		return
	}

	if req.Content == "" {
		http.Error(w, "error, content empty", http.StatusBadRequest)
		return
	}
	if req.Author == "" {
		req.Author = "coach"
	}

	message := &Message{
		Author:    req.Author,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	addedMessage, err := handler.api.Add(r.Context(), message)
	if err != nil {
		log.Errorf("failed to add coach message [%s]: %s", message.Author, err)
		http.Error(w, "error, failed to add new message", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterCoachMessages.Inc()

	log.Printf("new coach message added: [%s]: %d", addedMessage.Author, addedMessage.Id)
	pkg.WriteResponse(w, pkg.ContentType.Text, fmt.Sprintf("added:%d", addedMessage.Id), http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.api.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrMessageNotFound) {
			http.Error(w, "message not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete coach message %d: %s", id, err)
		http.Error(w, "error, message not deleted, internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	messages, err := handler.api.List(r.Context())
	if err != nil {
		log.Errorf("list coach messages error: %s", err)
		http.Error(w, "failed to get messages", http.StatusInternalServerError)
		return
	}

	if len(messages) == 0 {
		messages = []Message{}
	}

	messagesJson, err := json.Marshal(messages)
	if err != nil {
		log.Errorf("marshal coach messages error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resJson := fmt.Sprintf(`{"messages": %s, "total": %d}`, messagesJson, len(messages))
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, []byte(resJson))
}
