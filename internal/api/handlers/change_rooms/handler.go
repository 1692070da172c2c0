package change_rooms

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/test-dunyo/meet-booking-service/internal/api/handlers"
	"github.com/test-dunyo/meet-booking-service/internal/service/settings"
	"github.com/test-dunyo/meet-booking-service/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "so'rov tanasi noto'g'ri"
	msgInvalidColonyID    = "koloniya ID noto'g'ri"
	msgInvalidRoomsCount  = "xonalar soni noto'g'ri"
	msgSettingsNotFound   = "koloniya sozlamalari topilmadi"
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

// Handle PATCH /api/v1/colonies/{colonyId}/settings/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	colonyID, err := strconv.ParseInt(vars["colonyId"], 10, 64)
	if err != nil || colonyID <= 0 {
		h.logger.Warn("PATCH /colonies/{id}/settings/rooms - Invalid colony ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidColonyID)
		return
	}

	var req models.UpdateRoomsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /colonies/{id}/settings/rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateRooms(r.Context(), colonyID, &req); err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PATCH /colonies/{id}/settings/rooms - Invalid rooms count: colony_id=%d, rooms=%d",
				colonyID, req.RoomsCount)
			handlers.RespondBadRequest(w, msgInvalidRoomsCount)

		case errors.Is(err, settings.ErrSettingsNotFound):
			h.logger.Warn("PATCH /colonies/{id}/settings/rooms - Not found: colony_id=%d", colonyID)
			handlers.RespondNotFound(w, msgSettingsNotFound)

		default:
			h.logger.Error("PATCH /colonies/{id}/settings/rooms - Failed: colony_id=%d, error=%v", colonyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /colonies/{id}/settings/rooms - Updated: colony_id=%d, rooms=%d",
		colonyID, req.RoomsCount)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
