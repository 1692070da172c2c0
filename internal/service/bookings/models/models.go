package models

import (
	"time"

	"github.com/test-dunyo/meet-booking-service/internal/domain"
)

// Request модели

// RejectBookingRequest запрос на отклонение заявки
type RejectBookingRequest struct {
	Reason string `json:"reason"`
}

// ChangeVisitDaysRequest запрос на изменение длительности свидания
type ChangeVisitDaysRequest struct {
	Days int `json:"days"`
}

// Response модели

// RelativeResponse один посетитель заявки
type RelativeResponse struct {
	FullName string `json:"fullName"`
	Passport string `json:"passport"`
}

// BookingResponse ответ с данными заявки
type BookingResponse struct {
	ID                int64              `json:"id"`
	ColonyID          int64              `json:"colonyId"`
	ApplicationNumber string             `json:"applicationNumber"`
	PrisonerName      string             `json:"prisonerName"`
	VisitType         string             `json:"visitType"`
	Status            string             `json:"status"`
	Relatives         []RelativeResponse `json:"relatives"`

	StartDate *string `json:"startDate,omitempty"` // "2025-10-15"
	EndDate   *string `json:"endDate,omitempty"`   // Включительно
	RoomID    *int    `json:"roomId,omitempty"`

	RejectionReason *string `json:"rejectionReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком заявок
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// CloseExpiredResponse итог закрытия просроченных свиданий
type CloseExpiredResponse struct {
	ClosedCount int   `json:"closedCount"`
	PurgedCount int64 `json:"purgedCount"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	relatives := make([]RelativeResponse, 0, len(b.Relatives))
	for _, r := range b.Relatives {
		relatives = append(relatives, RelativeResponse{
			FullName: r.FullName,
			Passport: r.Passport,
		})
	}

	resp := &BookingResponse{
		ID:                b.ID,
		ColonyID:          b.ColonyID,
		ApplicationNumber: b.ColonyApplicationNumber,
		PrisonerName:      b.PrisonerName,
		VisitType:         string(b.VisitType),
		Status:            string(b.Status),
		Relatives:         relatives,
		RoomID:            b.RoomID,
		RejectionReason:   b.RejectionReason,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}

	if b.StartDate != nil {
		s := b.StartDate.Format(domain.DateFormat)
		resp.StartDate = &s
	}
	if b.EndDate != nil {
		e := b.EndDate.Format(domain.DateFormat)
		resp.EndDate = &e
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}
