package assign_single

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/test-dunyo/meet-booking-service/internal/domain"
	bookingRepo "github.com/test-dunyo/meet-booking-service/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	booking  *domain.Booking
	stays    []domain.RoomStay
	assigned *domain.Assignment
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _, _ int64) (*domain.Booking, error) {
	if f.booking == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetApprovedStays(_ context.Context, _ int64, _, _ time.Time) ([]domain.RoomStay, error) {
	return f.stays, nil
}

func (f *fakeBookingRepo) Assign(_ context.Context, _, _ int64, a *domain.Assignment) error {
	f.assigned = a
	return nil
}

type fakeSettingsRepo struct {
	settings *domain.ColonySettings
}

func (f *fakeSettingsRepo) GetByColony(_ context.Context, _ int64) (*domain.ColonySettings, error) {
	return f.settings, nil
}

type fakeSanitaryRepo struct {
	days []time.Time
}

func (f *fakeSanitaryRepo) ListRange(_ context.Context, _ int64, _, _ time.Time) ([]time.Time, error) {
	return f.days, nil
}

type fakeNotifier struct {
	approved int
}

func (f *fakeNotifier) BookingApproved(*domain.Booking, *domain.Assignment, string) {
	f.approved++
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func testBooking(status domain.VisitStatus, visitType domain.VisitType) *domain.Booking {
	return &domain.Booking{
		ID:                      7,
		ColonyID:                1,
		ColonyApplicationNumber: "A-007",
		PrisonerName:            "Rahimov B.",
		VisitType:               visitType,
		Status:                  status,
		CreatedAt:               testNow.AddDate(0, 0, -3),
	}
}

func newTestUseCase(repo *fakeBookingRepo, sanitary *fakeSanitaryRepo, rooms int, notifier *fakeNotifier) *UseCase {
	policy := domain.SearchPolicy{
		LeadTimeDays: domain.DefaultLeadTimeDays,
		HorizonDays:  domain.DefaultHorizonDays,
	}
	settings := &fakeSettingsRepo{settings: &domain.ColonySettings{ColonyID: 1, RoomsCount: rooms}}
	uc := NewUseCase(repo, settings, sanitary, notifier, &fakeTxManager{}, policy, time.UTC, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

// Минимальная дата считается от подачи заявки, не от момента обработки
func leadOK() time.Time {
	return day(1 - 3 + domain.DefaultLeadTimeDays)
}

func TestExecute_AssignsChosenDate(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusPending, domain.VisitLong)}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, &fakeSanitaryRepo{}, 2, notifier)

	start := leadOK()
	resp, err := uc.Execute(context.Background(), &Request{ColonyID: 1, BookingID: 7, AssignedDate: start})
	require.NoError(t, err)

	assert.Equal(t, start, resp.StartDate)
	assert.Equal(t, start.AddDate(0, 0, 1), resp.EndDate)
	assert.Equal(t, 1, resp.RoomID)
	assert.Equal(t, 2, resp.Days)
	assert.Equal(t, string(domain.VisitLong), resp.VisitType)
	assert.Equal(t, 1, notifier.approved)
	require.NotNil(t, repo.assigned)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSanitaryRepo{}, 2, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), &Request{ColonyID: 1, BookingID: 7, AssignedDate: leadOK()})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_AlreadyProcessed(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusApproved, domain.VisitShort)}
	uc := newTestUseCase(repo, &fakeSanitaryRepo{}, 2, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), &Request{ColonyID: 1, BookingID: 7, AssignedDate: leadOK()})
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
}

func TestExecute_LeadTimeViolation(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusPending, domain.VisitShort)}
	uc := newTestUseCase(repo, &fakeSanitaryRepo{}, 2, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), &Request{
		ColonyID:     1,
		BookingID:    7,
		AssignedDate: leadOK().AddDate(0, 0, -1),
	})
	assert.ErrorIs(t, err, ErrLeadTimeViolation)
}

func TestExecute_PastDateRejected(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusPending, domain.VisitShort)}
	uc := newTestUseCase(repo, &fakeSanitaryRepo{}, 2, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), &Request{
		ColonyID:     1,
		BookingID:    7,
		AssignedDate: testNow.AddDate(0, 0, -1),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SanitaryConflict(t *testing.T) {
	start := leadOK()
	// Санитарный день накануне начала тоже запрещает свидание
	sanitary := &fakeSanitaryRepo{days: []time.Time{start.AddDate(0, 0, -1)}}
	repo := &fakeBookingRepo{booking: testBooking(domain.StatusPending, domain.VisitShort)}
	uc := newTestUseCase(repo, sanitary, 2, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), &Request{ColonyID: 1, BookingID: 7, AssignedDate: start})
	assert.ErrorIs(t, err, ErrSanitaryConflict)
}

func TestExecute_NoRoomAvailable(t *testing.T) {
	start := leadOK()
	repo := &fakeBookingRepo{
		booking: testBooking(domain.StatusPending, domain.VisitShort),
		stays: []domain.RoomStay{
			{RoomID: 1, StartDate: start, EndDate: start},
			{RoomID: 2, StartDate: start, EndDate: start.AddDate(0, 0, 1)},
		},
	}
	uc := newTestUseCase(repo, &fakeSanitaryRepo{}, 2, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), &Request{ColonyID: 1, BookingID: 7, AssignedDate: start})
	assert.ErrorIs(t, err, ErrNoRoomAvailable)
}
