package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/test-dunyo/meet-booking-service/internal/domain"
)

// sendTimeout таймаут доставки одного сообщения
const sendTimeout = 10 * time.Second

// Event одно исходящее уведомление
type Event struct {
	ChatID string
	Text   string
}

// Service асинхронная доставка Telegram-уведомлений.
// Запись о бронировании первична: события кладутся в очередь ПОСЛЕ
// успешного сохранения, ошибки доставки логируются и никогда не
// распространяются на вызывающий код
type Service struct {
	client TelegramClient
	logger Logger
	loc    *time.Location

	events chan Event
	wg     sync.WaitGroup
	once   sync.Once
}

// NewService создает новый сервис уведомлений с очередью заданного размера
func NewService(client TelegramClient, logger Logger, loc *time.Location, queueSize int) *Service {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Service{
		client: client,
		logger: logger,
		loc:    loc,
		events: make(chan Event, queueSize),
	}
}

// Start запускает фонового воркера доставки
func (s *Service) Start() {
	s.wg.Add(1)
	go s.worker()
}

// Stop закрывает очередь и дожидается доставки оставшихся событий
func (s *Service) Stop() {
	s.once.Do(func() {
		close(s.events)
	})
	s.wg.Wait()
}

func (s *Service) worker() {
	defer s.wg.Done()

	for event := range s.events {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		err := s.client.SendMessage(ctx, event.ChatID, event.Text)
		cancel()

		if err != nil {
			s.logger.Error("notifier: failed to send message to chat_id=%s: %v", event.ChatID, err)
			continue
		}
		s.logger.Info("notifier: message sent to chat_id=%s", event.ChatID)
	}
}

// enqueue кладет событие в очередь; при переполнении событие
// отбрасывается с записью в лог
func (s *Service) enqueue(chatID, text string) {
	if chatID == "" {
		return
	}
	select {
	case s.events <- Event{ChatID: chatID, Text: text}:
	default:
		s.logger.Warn("notifier: queue full, dropping message for chat_id=%s", chatID)
	}
}

// BookingApproved уведомляет группу администраторов и заявителя об
// одобрении заявки
func (s *Service) BookingApproved(b *domain.Booking, a *domain.Assignment, adminChatID string) {
	s.enqueue(adminChatID, s.approvedGroupMessage(b, a))
	if b.TelegramChatID != nil {
		s.enqueue(*b.TelegramChatID, s.approvedApplicantMessage(b, a))
	}
}

// BookingRejected уведомляет об отклонении заявки
func (s *Service) BookingRejected(b *domain.Booking, reason, adminChatID string) {
	s.enqueue(adminChatID, s.rejectedMessage(b, reason))
	if b.TelegramChatID != nil {
		s.enqueue(*b.TelegramChatID, s.rejectedMessage(b, reason))
	}
}

// BookingCanceled уведомляет об отмене заявки администратором
func (s *Service) BookingCanceled(b *domain.Booking, adminChatID string) {
	s.enqueue(adminChatID, s.canceledMessage(b))
	if b.TelegramChatID != nil {
		s.enqueue(*b.TelegramChatID, s.canceledMessage(b))
	}
}

// VisitDaysChanged уведомляет об изменении количества дней свидания
func (s *Service) VisitDaysChanged(b *domain.Booking, days int, adminChatID string) {
	s.enqueue(adminChatID, s.daysChangedMessage(b, days))
	if b.TelegramChatID != nil {
		s.enqueue(*b.TelegramChatID, s.daysChangedMessage(b, days))
	}
}

// BookingClosed уведомляет заявителя о завершении свидания
func (s *Service) BookingClosed(b *domain.Booking, adminChatID string) {
	s.enqueue(adminChatID, s.closedMessage(b))
	if b.TelegramChatID != nil {
		s.enqueue(*b.TelegramChatID, s.closedMessage(b))
	}
}
