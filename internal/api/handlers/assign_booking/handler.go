package assign_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/test-dunyo/meet-booking-service/internal/api/handlers"
	"github.com/test-dunyo/meet-booking-service/internal/domain"
	assignSingle "github.com/test-dunyo/meet-booking-service/internal/usecase/assign_single"
)

const (
	msgInvalidRequestBody  = "so'rov tanasi noto'g'ri"
	msgInvalidColonyID     = "koloniya ID noto'g'ri"
	msgInvalidBookingID    = "ariza ID noto'g'ri"
	msgInvalidDate         = "sana formati noto'g'ri, YYYY-MM-DD kutilmoqda"
	msgNotFound            = "ariza topilmadi"
	msgAlreadyProcessed    = "ariza allaqachon ko'rib chiqilgan"
	msgColonyConfigMissing = "koloniya sozlamalari topilmadi"
	msgLeadTimeViolation   = "sana ariza topshirilgan kundan minimal muddatga yetmaydi"
	msgSanitaryConflict    = "tanlangan sana sanitariya kuniga to'g'ri keladi"
	msgNoRoomAvailable     = "tanlangan sanada bo'sh xona yo'q"
)

type Handler struct {
	useCase AssignSingleUseCase
	logger  Logger
}

func NewHandler(useCase AssignSingleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/colonies/{colonyId}/bookings/{bookingId}/assign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	colonyID, err := strconv.ParseInt(vars["colonyId"], 10, 64)
	if err != nil || colonyID <= 0 {
		h.logger.Warn("POST /colonies/{id}/bookings/{id}/assign - Invalid colony ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidColonyID)
		return
	}
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("POST /colonies/{id}/bookings/{id}/assign - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req AssignBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /colonies/{id}/bookings/{id}/assign - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		h.logger.Warn("POST /colonies/{id}/bookings/{id}/assign - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &assignSingle.Request{
		ColonyID:     colonyID,
		BookingID:    bookingID,
		AssignedDate: date,
	})
	if err != nil {
		switch {
		case errors.Is(err, assignSingle.ErrInvalidInput):
			h.logger.Warn("POST /colonies/{id}/bookings/{id}/assign - Invalid input: booking_id=%d, date=%s",
				bookingID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, assignSingle.ErrBookingNotFound):
			h.logger.Warn("POST /colonies/{id}/bookings/{id}/assign - Not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, assignSingle.ErrAlreadyProcessed):
			h.logger.Warn("POST /colonies/{id}/bookings/{id}/assign - Already processed: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyProcessed)

		case errors.Is(err, assignSingle.ErrColonyConfigMissing):
			h.logger.Warn("POST /colonies/{id}/bookings/{id}/assign - Colony config missing: colony_id=%d", colonyID)
			handlers.RespondNotFound(w, msgColonyConfigMissing)

		case errors.Is(err, assignSingle.ErrLeadTimeViolation):
			h.logger.Warn("POST /colonies/{id}/bookings/{id}/assign - Lead time violation: booking_id=%d, date=%s",
				bookingID, req.Date)
			handlers.RespondBadRequest(w, msgLeadTimeViolation)

		case errors.Is(err, assignSingle.ErrSanitaryConflict):
			h.logger.Warn("POST /colonies/{id}/bookings/{id}/assign - Sanitary conflict: booking_id=%d, date=%s",
				bookingID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgSanitaryConflict)

		case errors.Is(err, assignSingle.ErrNoRoomAvailable):
			h.logger.Warn("POST /colonies/{id}/bookings/{id}/assign - No room: booking_id=%d, date=%s",
				bookingID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgNoRoomAvailable)

		default:
			h.logger.Error("POST /colonies/{id}/bookings/{id}/assign - Failed: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /colonies/{id}/bookings/{id}/assign - Assigned: booking_id=%d, start=%s, room=%d",
		bookingID, result.StartDate.Format(domain.DateFormat), result.RoomID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
