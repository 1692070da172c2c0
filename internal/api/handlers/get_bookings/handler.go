package get_bookings

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

// Handle GET /api/v1/colonies/{colonyId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	colonyID, err := strconv.ParseInt(vars["colonyId"], 10, 64)
	if err != nil || colonyID <= 0 {
		h.logger.Warn("GET /colonies/{id}/bookings - Invalid colony ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidColonyID)
		return
	}

	result, err := h.service.List(r.Context(), colonyID)
	if err != nil {
		h.logger.Error("GET /colonies/{id}/bookings - Failed: colony_id=%d, error=%v", colonyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /colonies/{id}/bookings - Retrieved %d bookings: colony_id=%d",
		len(result.Bookings), colonyID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
