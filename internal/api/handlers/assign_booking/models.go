package assign_booking

import (
	"time"

	"github.com/test-dunyo/meet-booking-service/internal/domain"
	assignSingle "github.com/test-dunyo/meet-booking-service/internal/usecase/assign_single"
)

// AssignBookingRequest HTTP request model
type AssignBookingRequest struct {
	Date string `json:"date"` // "2025-10-15"
}

// AssignBookingResponse HTTP response model
type AssignBookingResponse struct {
	BookingID         int64  `json:"bookingId"`
	ApplicationNumber string `json:"applicationNumber"`
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
	RoomID            int    `json:"roomId"`
	Days              int    `json:"days"`
	VisitType         string `json:"visitType"`
}

// ParseDate парсит дату из HTTP запроса
func (r *AssignBookingRequest) ParseDate() (time.Time, error) {
	return time.Parse(domain.DateFormat, r.Date)
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *assignSingle.Response) *AssignBookingResponse {
	return &AssignBookingResponse{
		BookingID:         resp.BookingID,
		ApplicationNumber: resp.ApplicationNumber,
		StartDate:         resp.StartDate.Format(domain.DateFormat),
		EndDate:           resp.EndDate.Format(domain.DateFormat),
		RoomID:            resp.RoomID,
		Days:              resp.Days,
		VisitType:         resp.VisitType,
	}
}
