package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/test-dunyo/meet-booking-service/internal/api/handlers"
	"github.com/test-dunyo/meet-booking-service/internal/service/bookings"
)

const (
	msgInvalidColonyID  = "koloniya ID noto'g'ri"
	msgInvalidBookingID = "ariza ID noto'g'ri"
	msgNotFound         = "ariza topilmadi"
	msgCannotCancel     = "arizani bekor qilib bo'lmaydi"
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

// Handle POST /api/v1/colonies/{colonyId}/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	colonyID, err := strconv.ParseInt(vars["colonyId"], 10, 64)
	if err != nil || colonyID <= 0 {
		h.logger.Warn("POST /colonies/{id}/bookings/{id}/cancel - Invalid colony ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidColonyID)
		return
	}
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("POST /colonies/{id}/bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.Cancel(r.Context(), colonyID, bookingID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /colonies/{id}/bookings/{id}/cancel - Not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("POST /colonies/{id}/bookings/{id}/cancel - Cannot cancel: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		default:
			h.logger.Error("POST /colonies/{id}/bookings/{id}/cancel - Failed: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /colonies/{id}/bookings/{id}/cancel - Cancelled: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
