package assign_single

import "time"

// Request модель запроса ручного назначения даты конкретной заявке
type Request struct {
	ColonyID     int64     // ID колонии
	BookingID    int64     // ID заявки
	AssignedDate time.Time // Выбранная администратором дата начала
}

// Response модель ответа ручного назначения
type Response struct {
	BookingID         int64
	ApplicationNumber string
	StartDate         time.Time
	EndDate           time.Time // Включительно
	RoomID            int
	Days              int
	VisitType         string
}
