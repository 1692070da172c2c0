package reject_booking

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
	msgInvalidReason      = "rad etish sababi noto'g'ri"
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

// Handle POST /api/v1/colonies/{colonyId}/bookings/{bookingId}/reject
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	colonyID, err := strconv.ParseInt(vars["colonyId"], 10, 64)
	if err != nil || colonyID <= 0 {
		h.logger.Warn("POST /colonies/{id}/bookings/{id}/reject - Invalid colony ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidColonyID)
		return
	}
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("POST /colonies/{id}/bookings/{id}/reject - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req models.RejectBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /colonies/{id}/bookings/{id}/reject - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Reject(r.Context(), colonyID, bookingID, &req); err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /colonies/{id}/bookings/{id}/reject - Invalid reason: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidReason)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /colonies/{id}/bookings/{id}/reject - Not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAlreadyProcessed):
			h.logger.Warn("POST /colonies/{id}/bookings/{id}/reject - Already processed: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyProcessed)

		default:
			h.logger.Error("POST /colonies/{id}/bookings/{id}/reject - Failed: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /colonies/{id}/bookings/{id}/reject - Rejected: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
