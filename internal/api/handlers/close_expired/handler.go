package close_expired

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/test-dunyo/meet-booking-service/internal/api/handlers"
)

const msgInvalidColonyID = "koloniya ID noto'g'ri"

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

// Handle POST /api/v1/colonies/{colonyId}/bookings/close-expired
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	colonyID, err := strconv.ParseInt(vars["colonyId"], 10, 64)
	if err != nil || colonyID <= 0 {
		h.logger.Warn("POST /colonies/{id}/bookings/close-expired - Invalid colony ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidColonyID)
		return
	}

	result, err := h.service.CloseExpired(r.Context(), colonyID)
	if err != nil {
		h.logger.Error("POST /colonies/{id}/bookings/close-expired - Failed: colony_id=%d, error=%v",
			colonyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /colonies/{id}/bookings/close-expired - Done: colony_id=%d, closed=%d, purged=%d",
		colonyID, result.ClosedCount, result.PurgedCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
