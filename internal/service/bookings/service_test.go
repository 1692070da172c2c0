package bookings

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/test-dunyo/meet-booking-service/internal/domain"
	bookingRepo "github.com/test-dunyo/meet-booking-service/internal/infra/storage/booking"
	"github.com/test-dunyo/meet-booking-service/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	expired  []*domain.Booking

	rejected  map[int64]string
	cancelled []int64
	closed    []int64
	updated   map[int64]domain.VisitType
	purged    int64
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	f := &fakeBookingRepo{
		bookings: make(map[int64]*domain.Booking),
		rejected: make(map[int64]string),
		updated:  make(map[int64]domain.VisitType),
	}
	for _, b := range bookings {
		f.bookings[b.ID] = b
	}
	return f
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) ListActive(_ context.Context, _ int64) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateVisitType(_ context.Context, _ int64, id int64, visitType domain.VisitType) error {
	f.updated[id] = visitType
	return nil
}

func (f *fakeBookingRepo) Reject(_ context.Context, _ int64, id int64, reason string) error {
	f.rejected[id] = reason
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, _ int64, id int64) error {
	f.cancelled = append(f.cancelled, id)
	return nil
}

func (f *fakeBookingRepo) GetApprovedExpired(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.expired, nil
}

func (f *fakeBookingRepo) Close(_ context.Context, _ int64, id int64) error {
	f.closed = append(f.closed, id)
	return nil
}

func (f *fakeBookingRepo) DeleteClosedBefore(_ context.Context, _ int64, _ time.Time) (int64, error) {
	return f.purged, nil
}

type fakeSettingsRepo struct {
	settings *domain.ColonySettings
}

func (f *fakeSettingsRepo) GetByColony(_ context.Context, _ int64) (*domain.ColonySettings, error) {
	return f.settings, nil
}

type fakeNotifier struct {
	rejected    []int64
	cancelled   []int64
	daysChanged []int64
	closed      []int64
	adminChats  []string
}

func (f *fakeNotifier) BookingRejected(b *domain.Booking, _, adminChatID string) {
	f.rejected = append(f.rejected, b.ID)
	f.adminChats = append(f.adminChats, adminChatID)
}

func (f *fakeNotifier) BookingCanceled(b *domain.Booking, adminChatID string) {
	f.cancelled = append(f.cancelled, b.ID)
	f.adminChats = append(f.adminChats, adminChatID)
}

func (f *fakeNotifier) VisitDaysChanged(b *domain.Booking, _ int, adminChatID string) {
	f.daysChanged = append(f.daysChanged, b.ID)
	f.adminChats = append(f.adminChats, adminChatID)
}

func (f *fakeNotifier) BookingClosed(b *domain.Booking, adminChatID string) {
	f.closed = append(f.closed, b.ID)
	f.adminChats = append(f.adminChats, adminChatID)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func booking(id int64, status domain.VisitStatus) *domain.Booking {
	return &domain.Booking{
		ID:                      id,
		ColonyID:                1,
		ColonyApplicationNumber: "A-001",
		PrisonerName:            "Karimov A.",
		VisitType:               domain.VisitShort,
		Status:                  status,
	}
}

func newTestService(repo *fakeBookingRepo, notifier *fakeNotifier) *Service {
	settings := &fakeSettingsRepo{settings: &domain.ColonySettings{ColonyID: 1, RoomsCount: 5, AdminChatID: "-100"}}
	return NewService(repo, settings, notifier, 30, time.UTC, noopLogger{})
}

func TestReject_Pending(t *testing.T) {
	repo := newFakeBookingRepo(booking(1, domain.StatusPending))
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	err := svc.Reject(context.Background(), 1, 1, &models.RejectBookingRequest{Reason: "hujjatlar to'liq emas"})
	require.NoError(t, err)

	assert.Equal(t, "hujjatlar to'liq emas", repo.rejected[1])
	assert.Equal(t, []int64{1}, notifier.rejected)
	assert.Equal(t, []string{"-100"}, notifier.adminChats)
}

func TestReject_InvalidReason(t *testing.T) {
	repo := newFakeBookingRepo(booking(1, domain.StatusPending))
	svc := newTestService(repo, &fakeNotifier{})

	err := svc.Reject(context.Background(), 1, 1, &models.RejectBookingRequest{Reason: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	long := strings.Repeat("a", domain.MaxRejectionReasonLength+1)
	err = svc.Reject(context.Background(), 1, 1, &models.RejectBookingRequest{Reason: long})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReject_AlreadyProcessed(t *testing.T) {
	repo := newFakeBookingRepo(booking(1, domain.StatusApproved))
	svc := newTestService(repo, &fakeNotifier{})

	err := svc.Reject(context.Background(), 1, 1, &models.RejectBookingRequest{Reason: "sabab"})
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestCancel_ApprovedBooking(t *testing.T) {
	repo := newFakeBookingRepo(booking(1, domain.StatusApproved))
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	err := svc.Cancel(context.Background(), 1, 1)
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, repo.cancelled)
	assert.Equal(t, []int64{1}, notifier.cancelled)
}

func TestCancel_TerminalStatus(t *testing.T) {
	repo := newFakeBookingRepo(booking(1, domain.StatusClosed))
	svc := newTestService(repo, &fakeNotifier{})

	err := svc.Cancel(context.Background(), 1, 1)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), &fakeNotifier{})

	err := svc.Cancel(context.Background(), 1, 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestChangeVisitDays(t *testing.T) {
	repo := newFakeBookingRepo(booking(1, domain.StatusPending))
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	err := svc.ChangeVisitDays(context.Background(), 1, 1, &models.ChangeVisitDaysRequest{Days: 3})
	require.NoError(t, err)

	assert.Equal(t, domain.VisitExtra, repo.updated[1])
	assert.Equal(t, []int64{1}, notifier.daysChanged)
}

func TestChangeVisitDays_InvalidDays(t *testing.T) {
	repo := newFakeBookingRepo(booking(1, domain.StatusPending))
	svc := newTestService(repo, &fakeNotifier{})

	err := svc.ChangeVisitDays(context.Background(), 1, 1, &models.ChangeVisitDaysRequest{Days: 4})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.ChangeVisitDays(context.Background(), 1, 1, &models.ChangeVisitDaysRequest{Days: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCloseExpired(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.expired = []*domain.Booking{
		booking(1, domain.StatusApproved),
		booking(2, domain.StatusApproved),
	}
	repo.purged = 4
	notifier := &fakeNotifier{}
	svc := newTestService(repo, notifier)

	resp, err := svc.CloseExpired(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.ClosedCount)
	assert.Equal(t, int64(4), resp.PurgedCount)
	assert.Equal(t, []int64{1, 2}, repo.closed)
	assert.Equal(t, []int64{1, 2}, notifier.closed)
}
