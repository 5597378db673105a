package create_booking

import (
	"errors"
	"net/http"

	"github.com/k1rasov/GMP-BookingService/internal/api/handlers"
	"github.com/k1rasov/GMP-BookingService/internal/api/middleware"
	usecase "github.com/k1rasov/GMP-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется авторизация"
	msgSlotNotFound       = "слот не найден"
	msgSlotUnavailable    = "в слоте не осталось свободных мест"
	msgPaymentDeclined    = "платеж отклонен"
	msgReservationLost    = "место было занято во время оплаты, средства возвращены"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Декодируем body
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Создаем бронирование
	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(customerID))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, usecase.ErrInvalidPaymentMethod):
			h.logger.Warn("POST /bookings - Invalid input: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, usecase.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: slot_id=%d", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, usecase.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot unavailable: slot_id=%d, customer_id=%d",
				req.SlotID, customerID)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, usecase.ErrPaymentDeclined):
			h.logger.Warn("POST /bookings - Payment declined: customer_id=%d, error=%v", customerID, err)
			handlers.RespondPaymentRequired(w, msgPaymentDeclined)

		case errors.Is(err, usecase.ErrReservationLost):
			h.logger.Warn("POST /bookings - Reservation lost: slot_id=%d, customer_id=%d",
				req.SlotID, customerID)
			handlers.RespondConflict(w, msgReservationLost)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, customer_id=%d",
		resp.BookingID, customerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
