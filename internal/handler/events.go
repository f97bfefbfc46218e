package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/musiclog/musiclog/internal/ingest"
	"github.com/musiclog/musiclog/internal/logger"
	"github.com/musiclog/musiclog/internal/repository"
)

// BatchRequest wraps the batch ingestion payload
type BatchRequest struct {
	Events []ingest.EventInput `json:"events"`
}

// HandleCreateEvent ingests a single listening event
// @Summary Ingest a listening event
// @Description Validates and persists one listening event, then notifies subscribers
// @Tags events
// @Accept json
// @Produce json
// @Param event body ingest.EventInput true "Listening event"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /events [post]
func HandleCreateEvent(ingestService ingest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var input ingest.EventInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			log.Error("Failed to decode create event request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		event, err := ingestService.ProcessEvent(r.Context(), input)
		if err != nil {
			status, message := mapIngestError(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusCreated, DataResponse{Data: event})
	}
}

// HandleCreateEventBatch ingests multiple listening events sequentially
// @Summary Ingest a batch of listening events
// @Description Processes events in order; invalid items are skipped, the rest succeed
// @Tags events
// @Accept json
// @Produce json
// @Param events body BatchRequest true "Listening events"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /events/batch [post]
func HandleCreateEventBatch(ingestService ingest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req BatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode batch request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if req.Events == nil {
			respondError(w, http.StatusBadRequest, ErrMsgEventsMustBeArray)
			return
		}

		processed, err := ingestService.ProcessBatch(r.Context(), req.Events)
		if err != nil {
			log.Error("Batch processing failed", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgProcessBatchFailed)
			return
		}

		respondDataCount(w, http.StatusCreated, processed, len(processed))
	}
}

// HandleGetAllEvents lists every stored listening event
// @Summary List listening events
// @Tags events
// @Produce json
// @Success 200 {object} DataResponse
// @Router /events [get]
func HandleGetAllEvents(events repository.Event) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		all, err := events.FindAll(r.Context())
		if err != nil {
			log.Error("Failed to list events", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGetEventsFailed)
			return
		}

		respondDataCount(w, http.StatusOK, all, len(all))
	}
}

// HandleGetEventByID fetches one listening event
// @Summary Get a listening event by id
// @Tags events
// @Produce json
// @Param id path int true "Event id"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /events/{id} [get]
func HandleGetEventByID(events repository.Event) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidEventID)
			return
		}

		event, err := events.FindByID(r.Context(), id)
		if err != nil {
			log.Error("Failed to fetch event", "event_id", id, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGetEventFailed)
			return
		}
		if event == nil {
			respondError(w, http.StatusNotFound, ErrMsgEventNotFoundHTTP)
			return
		}

		respondData(w, event)
	}
}

// HandleGetEventsByArtist lists events for one artist
// @Summary List listening events by artist
// @Tags events
// @Produce json
// @Param artist path string true "Artist name"
// @Success 200 {object} DataResponse
// @Router /events/artist/{artist} [get]
func HandleGetEventsByArtist(events repository.Event) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		artist := chi.URLParam(r, "artist")
		matched, err := events.FindByArtist(r.Context(), artist)
		if err != nil {
			log.Error("Failed to fetch events by artist", "artist", artist, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGetEventsFailed)
			return
		}

		respondDataCount(w, http.StatusOK, matched, len(matched))
	}
}
