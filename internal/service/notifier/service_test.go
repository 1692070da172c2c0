package notifier

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/test-dunyo/meet-booking-service/internal/domain"
	"github.com/test-dunyo/meet-booking-service/pkg/ptr"
)

type fakeTelegramClient struct {
	mu   sync.Mutex
	sent []Event
	err  error
}

func (f *fakeTelegramClient) SendMessage(_ context.Context, chatID, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, Event{ChatID: chatID, Text: text})
	return nil
}

func (f *fakeTelegramClient) messages() []Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Event, len(f.sent))
	copy(out, f.sent)
	return out
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.Booking {
	start := time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)
	return &domain.Booking{
		ID:                      5,
		ColonyID:                1,
		ColonyApplicationNumber: "A-005",
		PrisonerName:            "Karimov A.",
		VisitType:               domain.VisitLong,
		Status:                  domain.StatusApproved,
		Relatives:               []domain.Relative{{FullName: "Karimova M.", Passport: "AA1234567"}},
		TelegramChatID:          ptr.Ptr("12345"),
		StartDate:               &start,
		EndDate:                 &end,
	}
}

func testAssignment() *domain.Assignment {
	start := time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)
	return &domain.Assignment{
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 1),
		RoomID:    2,
		Days:      2,
		VisitType: domain.VisitLong,
	}
}

func TestBookingApproved_DeliversToAdminAndApplicant(t *testing.T) {
	client := &fakeTelegramClient{}
	svc := NewService(client, noopLogger{}, time.UTC, 8)
	svc.Start()

	svc.BookingApproved(testBooking(), testAssignment(), "-100200")
	svc.Stop()

	sent := client.messages()
	require.Len(t, sent, 2)
	assert.Equal(t, "-100200", sent[0].ChatID)
	assert.Equal(t, "12345", sent[1].ChatID)
	assert.Contains(t, sent[1].Text, "11.03.2025")
}

func TestBookingRejected_SkipsApplicantWithoutChat(t *testing.T) {
	client := &fakeTelegramClient{}
	svc := NewService(client, noopLogger{}, time.UTC, 8)
	svc.Start()

	b := testBooking()
	b.TelegramChatID = nil
	svc.BookingRejected(b, "hujjatlar to'liq emas", "-100200")
	svc.Stop()

	sent := client.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, "-100200", sent[0].ChatID)
	assert.Contains(t, sent[0].Text, "hujjatlar to'liq emas")
}

func TestDeliveryFailureDoesNotPropagate(t *testing.T) {
	client := &fakeTelegramClient{err: errors.New("telegram unavailable")}
	svc := NewService(client, noopLogger{}, time.UTC, 8)
	svc.Start()

	// Ошибки доставки только логируются
	svc.BookingCanceled(testBooking(), "-100200")
	svc.Stop()

	assert.Empty(t, client.messages())
}

func TestEnqueue_EmptyChatIDIgnored(t *testing.T) {
	client := &fakeTelegramClient{}
	svc := NewService(client, noopLogger{}, time.UTC, 8)
	svc.Start()

	b := testBooking()
	b.TelegramChatID = nil
	svc.BookingClosed(b, "")
	svc.Stop()

	assert.Empty(t, client.messages())
}
