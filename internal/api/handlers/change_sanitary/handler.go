package change_sanitary

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/test-dunyo/meet-booking-service/internal/api/handlers"
	"github.com/test-dunyo/meet-booking-service/internal/service/sanitary"
	"github.com/test-dunyo/meet-booking-service/internal/service/sanitary/models"
)

const (
	msgInvalidRequestBody = "so'rov tanasi noto'g'ri"
	msgInvalidColonyID    = "koloniya ID noto'g'ri"
	msgInvalidDayRequest  = "sana yoki amal noto'g'ri"
	msgDateInPast         = "o'tgan sana uchun amal bajarib bo'lmaydi"
	msgDayNotFound        = "sanitariya kuni topilmadi"
)

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

// Handle POST /api/v1/colonies/{colonyId}/sanitary-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	colonyID, err := strconv.ParseInt(vars["colonyId"], 10, 64)
	if err != nil || colonyID <= 0 {
		h.logger.Warn("POST /colonies/{id}/sanitary-days - Invalid colony ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidColonyID)
		return
	}

	var req models.ToggleDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /colonies/{id}/sanitary-days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Toggle(r.Context(), colonyID, &req); err != nil {
		switch {
		case errors.Is(err, sanitary.ErrInvalidInput):
			h.logger.Warn("POST /colonies/{id}/sanitary-days - Invalid request: colony_id=%d, date=%q, action=%q",
				colonyID, req.Date, req.Action)
			handlers.RespondBadRequest(w, msgInvalidDayRequest)

		case errors.Is(err, sanitary.ErrDateInPast):
			h.logger.Warn("POST /colonies/{id}/sanitary-days - Date in past: colony_id=%d, date=%s",
				colonyID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, sanitary.ErrDayNotFound):
			h.logger.Warn("POST /colonies/{id}/sanitary-days - Day not found: colony_id=%d, date=%s",
				colonyID, req.Date)
			handlers.RespondNotFound(w, msgDayNotFound)

		default:
			h.logger.Error("POST /colonies/{id}/sanitary-days - Failed: colony_id=%d, error=%v", colonyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /colonies/{id}/sanitary-days - Applied: colony_id=%d, date=%s, action=%s",
		colonyID, req.Date, req.Action)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
