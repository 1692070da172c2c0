package get_sanitary

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/test-dunyo/meet-booking-service/internal/api/handlers"
)

const msgInvalidColonyID = "koloniya ID noto'g'ri"

type Handler struct {
	service SanitaryService
	logger  Logger
}

func NewHandler(service SanitaryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/colonies/{colonyId}/sanitary-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	colonyID, err := strconv.ParseInt(vars["colonyId"], 10, 64)
	if err != nil || colonyID <= 0 {
		h.logger.Warn("GET /colonies/{id}/sanitary-days - Invalid colony ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidColonyID)
		return
	}

	result, err := h.service.List(r.Context(), colonyID)
	if err != nil {
		h.logger.Error("GET /colonies/{id}/sanitary-days - Failed: colony_id=%d, error=%v", colonyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /colonies/{id}/sanitary-days - Retrieved %d days: colony_id=%d",
		len(result.Days), colonyID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
