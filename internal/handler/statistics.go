package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/musiclog/musiclog/internal/domain"
	"github.com/musiclog/musiclog/internal/logger"
	"github.com/musiclog/musiclog/internal/repository"
	"github.com/musiclog/musiclog/internal/stats"
)

// StatisticResponse wraps a single statistic with its display label
type StatisticResponse struct {
	Type        domain.StatisticType     `json:"type"`
	DisplayName string                   `json:"displayName"`
	Result      *domain.StatisticsResult `json:"result"`
}

// statisticHandler serves one fixed statistic type. With a `date` query
// parameter the calculation runs over that day's events only; otherwise it
// covers the full event history.
func statisticHandler(statsService stats.Service, events repository.Event, statType domain.StatisticType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		dayEvents, ok := dayEventsFromQuery(w, r, events)
		if !ok {
			return
		}

		result, err := statsService.CalculateStatistics(r.Context(), statType, dayEvents)
		if err != nil {
			log.Error("Failed to calculate statistic", "type", statType, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgCalculateStatsFailed)
			return
		}

		respondData(w, result)
	}
}

// HandleGetMostPlayedArtist serves the most-played-artist statistic
// @Summary Most played artist
// @Tags statistics
// @Produce json
// @Param date query string false "Restrict to one UTC day (YYYY-MM-DD)"
// @Success 200 {object} DataResponse
// @Router /statistics/most-played-artist [get]
func HandleGetMostPlayedArtist(statsService stats.Service, events repository.Event) http.HandlerFunc {
	return statisticHandler(statsService, events, domain.StatMostPlayedArtist)
}

// HandleGetAverageDuration serves the average-duration statistic
// @Summary Average listening duration
// @Tags statistics
// @Produce json
// @Param date query string false "Restrict to one UTC day (YYYY-MM-DD)"
// @Success 200 {object} DataResponse
// @Router /statistics/average-duration [get]
func HandleGetAverageDuration(statsService stats.Service, events repository.Event) http.HandlerFunc {
	return statisticHandler(statsService, events, domain.StatAverageDuration)
}

// HandleGetDailyTrend serves the daily-trend statistic
// @Summary Daily listening trend
// @Tags statistics
// @Produce json
// @Param date query string false "Restrict to one UTC day (YYYY-MM-DD)"
// @Success 200 {object} DataResponse
// @Router /statistics/daily-trend [get]
func HandleGetDailyTrend(statsService stats.Service, events repository.Event) http.HandlerFunc {
	return statisticHandler(statsService, events, domain.StatDailyTrend)
}

// HandleGetPeakHours serves the peak-hours statistic
// @Summary Peak listening hours
// @Tags statistics
// @Produce json
// @Param date query string false "Restrict to one UTC day (YYYY-MM-DD)"
// @Success 200 {object} DataResponse
// @Router /statistics/peak-hours [get]
func HandleGetPeakHours(statsService stats.Service, events repository.Event) http.HandlerFunc {
	return statisticHandler(statsService, events, domain.StatPeakHours)
}

// HandleGetStatisticByType serves any registered statistic by its type key.
// Unknown types are a normal outcome and answer 404, not 500.
// @Summary Statistic by type key
// @Tags statistics
// @Produce json
// @Param type path string true "Statistic type key"
// @Param date query string false "Restrict to one UTC day (YYYY-MM-DD)"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /statistics/type/{type} [get]
func HandleGetStatisticByType(statsService stats.Service, events repository.Event) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		statType := domain.StatisticType(chi.URLParam(r, "type"))

		dayEvents, ok := dayEventsFromQuery(w, r, events)
		if !ok {
			return
		}

		result, err := statsService.CalculateStatistics(r.Context(), statType, dayEvents)
		if err != nil {
			log.Error("Failed to calculate statistic", "type", statType, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgCalculateStatsFailed)
			return
		}
		if result == nil {
			respondError(w, http.StatusNotFound, ErrMsgUnknownStatisticType)
			return
		}

		respondData(w, StatisticResponse{
			Type:        statType,
			DisplayName: statType.DisplayName(),
			Result:      result,
		})
	}
}

// HandleGetAllStatistics serves all four built-in statistics in one call
// @Summary All statistics
// @Tags statistics
// @Produce json
// @Success 200 {object} DataResponse
// @Router /statistics/all [get]
func HandleGetAllStatistics(statsService stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		mostPlayed, err := statsService.GetMostPlayedArtist(r.Context(), nil)
		if err != nil {
			log.Error("Failed to calculate statistics", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgCalculateStatsFailed)
			return
		}
		averageDuration, err := statsService.GetAverageDuration(r.Context(), nil)
		if err != nil {
			log.Error("Failed to calculate statistics", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgCalculateStatsFailed)
			return
		}
		dailyTrend, err := statsService.GetDailyTrends(r.Context(), nil)
		if err != nil {
			log.Error("Failed to calculate statistics", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgCalculateStatsFailed)
			return
		}
		peakHours, err := statsService.GetPeakHours(r.Context(), nil)
		if err != nil {
			log.Error("Failed to calculate statistics", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgCalculateStatsFailed)
			return
		}

		respondData(w, domain.DailyStatistics{
			MostPlayedArtist: mostPlayed,
			AverageDuration:  averageDuration,
			DailyTrend:       dailyTrend,
			PeakHours:        peakHours,
		})
	}
}

// HandleGetStatisticsByDate serves all four statistics over one day's
// consistent event snapshot
// @Summary Statistics for one day
// @Tags statistics
// @Produce json
// @Param date path string true "UTC day (YYYY-MM-DD)"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /statistics/date/{date} [get]
func HandleGetStatisticsByDate(statsService stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		date, err := time.Parse(stats.DateKeyFormat, chi.URLParam(r, "date"))
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidDate)
			return
		}

		daily, err := statsService.GetStatisticsByDate(r.Context(), date)
		if err != nil {
			log.Error("Failed to get daily statistics", "date", chi.URLParam(r, "date"), "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGetDailyStatsFailed)
			return
		}

		respondData(w, daily)
	}
}

// dayEventsFromQuery resolves the optional `date` query parameter into a
// day-filtered event collection. A nil slice (with ok=true) means no filter,
// letting the service fall back to the full event history.
func dayEventsFromQuery(w http.ResponseWriter, r *http.Request, events repository.Event) ([]domain.ListeningEvent, bool) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return nil, true
	}

	date, err := time.Parse(stats.DateKeyFormat, raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidDate)
		return nil, false
	}

	dayEvents, err := events.FindByDate(r.Context(), date)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to fetch events for day", "date", raw, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgGetEventsFailed)
		return nil, false
	}
	if dayEvents == nil {
		dayEvents = []domain.ListeningEvent{}
	}
	return dayEvents, true
}
