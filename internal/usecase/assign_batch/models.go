package assign_batch

import "time"

// Request модель запроса пакетного распределения
type Request struct {
	ColonyID int64 // ID колонии
	Count    int   // Сколько pending-заявок обработать (1..50)
}

// AssignmentResult результат распределения одной заявки
type AssignmentResult struct {
	BookingID         int64     // ID заявки
	ApplicationNumber string    // Номер заявки в колонии
	StartDate         time.Time // Дата начала свидания
	EndDate           time.Time // Дата окончания (включительно)
	RoomID            int       // Назначенная комната
	Days              int       // Итоговая длительность в днях
	VisitType         string    // Итоговая категория (могла быть понижена)
}

// Response модель ответа пакетного распределения
type Response struct {
	TotalCount    int                // Сколько заявок рассмотрено
	AssignedCount int                // Сколько заявок распределено
	SkippedCount  int                // Сколько заявок пропущено
	Assignments   []AssignmentResult // Успешные распределения
}
