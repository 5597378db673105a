package get_available_dates

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/k1rasov/GMP-BookingService/internal/api/handlers"
	"github.com/k1rasov/GMP-BookingService/internal/domain"
	usecase "github.com/k1rasov/GMP-BookingService/internal/usecase/get_available_dates"
)

const (
	msgInvalidWorkshopID  = "некорректный ID мастерской"
	msgInvalidYearMonth   = "некорректные год или месяц"
	msgInvalidServiceType = "некорректный тип услуги"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// DatesResponse HTTP response model
type DatesResponse struct {
	Dates []string `json:"dates"`
}

// Handle GET /api/v1/workshops/{workshopId}/available-dates?year=2026&month=9&serviceType=basic
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workshopID, err := strconv.ParseInt(vars["workshopId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /workshops/{id}/available-dates - Invalid workshop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkshopID)
		return
	}

	query := r.URL.Query()

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidYearMonth)
		return
	}

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil || month < 1 || month > 12 {
		handlers.RespondBadRequest(w, msgInvalidYearMonth)
		return
	}

	serviceType, err := domain.ParseServiceType(query.Get("serviceType"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceType)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), usecase.Request{
		WorkshopID:  workshopID,
		Year:        year,
		Month:       time.Month(month),
		ServiceType: serviceType,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			h.logger.Warn("GET /workshops/{id}/available-dates - Invalid input: workshop_id=%d, error=%v",
				workshopID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /workshops/{id}/available-dates - Failed: workshop_id=%d, error=%v",
				workshopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &DatesResponse{Dates: resp.Dates})
}
