package models

// Действия над санитарным днем
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

// ToggleDayRequest запрос на добавление или снятие санитарного дня
type ToggleDayRequest struct {
	Date   string `json:"date"`   // "2025-10-15"
	Action string `json:"action"` // add | remove
}

// DayListResponse ответ со списком санитарных дней колонии
type DayListResponse struct {
	Days []string `json:"days"` // Отсортированы по возрастанию
}
