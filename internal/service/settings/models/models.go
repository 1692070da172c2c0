package models

import "github.com/test-dunyo/meet-booking-service/internal/domain"

// UpdateRoomsRequest запрос на изменение количества комнат колонии
type UpdateRoomsRequest struct {
	RoomsCount int `json:"roomsCount"`
}

// SettingsResponse настройки колонии для админ-панели
type SettingsResponse struct {
	ColonyID    int64  `json:"colonyId"`
	RoomsCount  int    `json:"roomsCount"`
	AdminChatID string `json:"adminChatId,omitempty"`
}

// FromDomainSettings конвертирует доменные настройки в ответ API
func FromDomainSettings(s *domain.ColonySettings) *SettingsResponse {
	return &SettingsResponse{
		ColonyID:    s.ColonyID,
		RoomsCount:  s.RoomsCount,
		AdminChatID: s.AdminChatID,
	}
}
