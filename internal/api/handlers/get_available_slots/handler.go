package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/k1rasov/GMP-BookingService/internal/api/handlers"
	"github.com/k1rasov/GMP-BookingService/internal/domain"
	usecase "github.com/k1rasov/GMP-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidWorkshopID  = "некорректный ID мастерской"
	msgInvalidDate        = "некорректная дата"
	msgInvalidServiceType = "некорректный тип услуги"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/workshops/{workshopId}/available-slots?date=2026-09-15&serviceType=basic
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workshopID, err := strconv.ParseInt(vars["workshopId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /workshops/{id}/available-slots - Invalid workshop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkshopID)
		return
	}

	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	serviceType, err := domain.ParseServiceType(query.Get("serviceType"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidServiceType)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), usecase.Request{
		WorkshopID:  workshopID,
		Date:        date,
		ServiceType: serviceType,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			h.logger.Warn("GET /workshops/{id}/available-slots - Invalid input: workshop_id=%d, error=%v",
				workshopID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /workshops/{id}/available-slots - Failed: workshop_id=%d, error=%v",
				workshopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
