package change_visit_days

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/test-dunyo/meet-booking-service/internal/api/handlers"
	"github.com/test-dunyo/meet-booking-service/internal/service/bookings"
	"github.com/test-dunyo/meet-booking-service/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "so'rov tanasi noto'g'ri"
	msgInvalidColonyID    = "koloniya ID noto'g'ri"
	msgInvalidBookingID   = "ariza ID noto'g'ri"
	msgInvalidDays        = "kunlar soni 1 dan 3 gacha bo'lishi kerak"
	msgNotFound           = "ariza topilmadi"
	msgAlreadyProcessed   = "ariza allaqachon ko'rib chiqilgan"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/colonies/{colonyId}/bookings/{bookingId}/days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	colonyID, err := strconv.ParseInt(vars["colonyId"], 10, 64)
	if err != nil || colonyID <= 0 {
		h.logger.Warn("PATCH /colonies/{id}/bookings/{id}/days - Invalid colony ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidColonyID)
		return
	}
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PATCH /colonies/{id}/bookings/{id}/days - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req models.ChangeVisitDaysRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /colonies/{id}/bookings/{id}/days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ChangeVisitDays(r.Context(), colonyID, bookingID, &req); err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /colonies/{id}/bookings/{id}/days - Invalid days: booking_id=%d, days=%d",
				bookingID, req.Days)
			handlers.RespondBadRequest(w, msgInvalidDays)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /colonies/{id}/bookings/{id}/days - Not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAlreadyProcessed):
			h.logger.Warn("PATCH /colonies/{id}/bookings/{id}/days - Already processed: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyProcessed)

		default:
			h.logger.Error("PATCH /colonies/{id}/bookings/{id}/days - Failed: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /colonies/{id}/bookings/{id}/days - Updated: booking_id=%d, days=%d",
		bookingID, req.Days)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
