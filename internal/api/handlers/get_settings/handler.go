package get_settings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/test-dunyo/meet-booking-service/internal/api/handlers"
	"github.com/test-dunyo/meet-booking-service/internal/service/settings"
)

const (
	msgInvalidColonyID  = "koloniya ID noto'g'ri"
	msgSettingsNotFound = "koloniya sozlamalari topilmadi"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/colonies/{colonyId}/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	colonyID, err := strconv.ParseInt(vars["colonyId"], 10, 64)
	if err != nil || colonyID <= 0 {
		h.logger.Warn("GET /colonies/{id}/settings - Invalid colony ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidColonyID)
		return
	}

	result, err := h.service.Get(r.Context(), colonyID)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			h.logger.Warn("GET /colonies/{id}/settings - Not found: colony_id=%d", colonyID)
			handlers.RespondNotFound(w, msgSettingsNotFound)
			return
		}
		h.logger.Error("GET /colonies/{id}/settings - Failed: colony_id=%d, error=%v", colonyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /colonies/{id}/settings - Retrieved: colony_id=%d, rooms=%d",
		colonyID, result.RoomsCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
