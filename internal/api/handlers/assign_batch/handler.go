package assign_batch

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/test-dunyo/meet-booking-service/internal/api/handlers"
	assignBatch "github.com/test-dunyo/meet-booking-service/internal/usecase/assign_batch"
)

const (
	msgInvalidRequestBody  = "so'rov tanasi noto'g'ri"
	msgInvalidColonyID     = "koloniya ID noto'g'ri"
	msgInvalidCount        = "arizalar soni noto'g'ri"
	msgColonyConfigMissing = "koloniya sozlamalari topilmadi"
)

type Handler struct {
	useCase AssignBatchUseCase
	logger  Logger
}

func NewHandler(useCase AssignBatchUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/colonies/{colonyId}/bookings/assign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	colonyID, err := strconv.ParseInt(vars["colonyId"], 10, 64)
	if err != nil || colonyID <= 0 {
		h.logger.Warn("POST /colonies/{id}/bookings/assign - Invalid colony ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidColonyID)
		return
	}

	var req AssignBatchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /colonies/{id}/bookings/assign - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &assignBatch.Request{
		ColonyID: colonyID,
		Count:    req.Count,
	})
	if err != nil {
		switch {
		case errors.Is(err, assignBatch.ErrInvalidInput):
			h.logger.Warn("POST /colonies/{id}/bookings/assign - Invalid input: colony_id=%d, count=%d",
				colonyID, req.Count)
			handlers.RespondBadRequest(w, msgInvalidCount)

		case errors.Is(err, assignBatch.ErrColonyConfigMissing):
			h.logger.Warn("POST /colonies/{id}/bookings/assign - Colony config missing: colony_id=%d", colonyID)
			handlers.RespondNotFound(w, msgColonyConfigMissing)

		default:
			h.logger.Error("POST /colonies/{id}/bookings/assign - Failed: colony_id=%d, error=%v", colonyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /colonies/{id}/bookings/assign - Batch done: colony_id=%d, assigned=%d, skipped=%d",
		colonyID, result.AssignedCount, result.SkippedCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
