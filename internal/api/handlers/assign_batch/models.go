package assign_batch

import (
	"github.com/test-dunyo/meet-booking-service/internal/domain"
	assignBatch "github.com/test-dunyo/meet-booking-service/internal/usecase/assign_batch"
)

// AssignBatchRequest HTTP request model
type AssignBatchRequest struct {
	Count int `json:"count"` // Сколько заявок обработать за запуск
}

// AssignmentResponse одно назначение в ответе
type AssignmentResponse struct {
	BookingID         int64  `json:"bookingId"`
	ApplicationNumber string `json:"applicationNumber"`
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
	RoomID            int    `json:"roomId"`
	Days              int    `json:"days"`
	VisitType         string `json:"visitType"`
}

// AssignBatchResponse HTTP response model
type AssignBatchResponse struct {
	TotalCount    int                  `json:"totalCount"`
	AssignedCount int                  `json:"assignedCount"`
	SkippedCount  int                  `json:"skippedCount"`
	Assignments   []AssignmentResponse `json:"assignments"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *assignBatch.Response) *AssignBatchResponse {
	out := &AssignBatchResponse{
		TotalCount:    resp.TotalCount,
		AssignedCount: resp.AssignedCount,
		SkippedCount:  resp.SkippedCount,
		Assignments:   make([]AssignmentResponse, 0, len(resp.Assignments)),
	}
	for _, a := range resp.Assignments {
		out.Assignments = append(out.Assignments, AssignmentResponse{
			BookingID:         a.BookingID,
			ApplicationNumber: a.ApplicationNumber,
			StartDate:         a.StartDate.Format(domain.DateFormat),
			EndDate:           a.EndDate.Format(domain.DateFormat),
			RoomID:            a.RoomID,
			Days:              a.Days,
			VisitType:         a.VisitType,
		})
	}
	return out
}
