package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/test-dunyo/meet-booking-service/internal/domain"
	"github.com/test-dunyo/meet-booking-service/pkg/dbmetrics"
	"github.com/test-dunyo/meet-booking-service/pkg/psqlbuilder"
)

// bookingColumns полный список колонок таблицы bookings
var bookingColumns = []string{
	"id",
	"colony_id",
	"colony_application_number",
	"prisoner_name",
	"visit_type",
	"status",
	"relatives",
	"telegram_chat_id",
	"start_date",
	"end_date",
	"room_id",
	"rejection_reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с заявками на свидание
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает заявку колонии по ID
func (r *Repository) GetByID(ctx context.Context, colonyID, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id, "colony_id": colonyID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetOldestPending получает до limit самых старых pending-заявок колонии
// (FIFO по дате подачи)
func (r *Repository) GetOldestPending(ctx context.Context, colonyID int64, limit int) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"colony_id": colonyID, "status": domain.StatusPending}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOldestPending - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOldestPending - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListActive получает все заявки колонии для админ-панели:
// с непустым списком посетителей и не отменённые
func (r *Repository) ListActive(ctx context.Context, colonyID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"colony_id": colonyID}).
		Where(squirrel.NotEq{"status": domain.StatusCanceled}).
		Where("relatives <> '[]'::jsonb").
		OrderBy("id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetApprovedStays получает (комната, диапазон дат) всех одобренных заявок
// колонии, пересекающих [from, to]. Используется для однократной загрузки
// занятости комнат перед пакетным распределением
func (r *Repository) GetApprovedStays(ctx context.Context, colonyID int64, from, to time.Time) ([]domain.RoomStay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Пересечение инклюзивных диапазонов: start <= to AND end >= from
	query, args, err := psqlbuilder.Select("room_id", "start_date", "end_date").
		From("bookings").
		Where(squirrel.Eq{"colony_id": colonyID, "status": domain.StatusApproved}).
		Where(squirrel.LtOrEq{"start_date": to}).
		Where(squirrel.GtOrEq{"end_date": from}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetApprovedStays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetApprovedStays - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stays := make([]domain.RoomStay, 0)
	for rows.Next() {
		var stay domain.RoomStay
		if err := rows.Scan(&stay.RoomID, &stay.StartDate, &stay.EndDate); err != nil {
			return nil, fmt.Errorf("%w: GetApprovedStays - scan row: %v", ErrScanRow, err)
		}
		stays = append(stays, stay)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetApprovedStays - rows error: %v", ErrScanRow, err)
	}

	return stays, nil
}

// Assign переводит pending-заявку в approved с назначенными датами и комнатой.
// Выполняется внутри сериализуемой транзакции, чтобы проверка занятости и
// запись были атомарны
func (r *Repository) Assign(ctx context.Context, colonyID, id int64, a *domain.Assignment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusApproved).
		Set("start_date", a.StartDate).
		Set("end_date", a.EndDate).
		Set("room_id", a.RoomID).
		Set("visit_type", a.VisitType).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "colony_id": colonyID, "status": domain.StatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Assign - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Assign", query, args)
}

// UpdateVisitType меняет категорию pending-заявки (1/2/3-дневная)
func (r *Repository) UpdateVisitType(ctx context.Context, colonyID, id int64, visitType domain.VisitType) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("visit_type", visitType).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "colony_id": colonyID, "status": domain.StatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateVisitType - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "UpdateVisitType", query, args)
}

// Reject отклоняет pending-заявку с указанием причины
func (r *Repository) Reject(ctx context.Context, colonyID, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusRejected).
		Set("rejection_reason", reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "colony_id": colonyID, "status": domain.StatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reject - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Reject", query, args)
}

// Cancel отменяет заявку администратором (из pending или approved)
func (r *Repository) Cancel(ctx context.Context, colonyID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCanceled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":        id,
			"colony_id": colonyID,
			"status":    []domain.VisitStatus{domain.StatusPending, domain.StatusApproved},
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Cancel", query, args)
}

// GetApprovedExpired получает одобренные заявки колонии, чья дата окончания
// раньше before (свидание уже прошло)
func (r *Repository) GetApprovedExpired(ctx context.Context, colonyID int64, before time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"colony_id": colonyID, "status": domain.StatusApproved}).
		Where(squirrel.Lt{"end_date": before}).
		OrderBy("end_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetApprovedExpired - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetApprovedExpired - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Close переводит одобренную заявку в closed
func (r *Repository) Close(ctx context.Context, colonyID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusClosed).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "colony_id": colonyID, "status": domain.StatusApproved}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Close - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Close", query, args)
}

// DeleteClosedBefore физически удаляет закрытые заявки, чья дата окончания
// раньше cutoff. Возвращает число удаленных строк
func (r *Repository) DeleteClosedBefore(ctx context.Context, colonyID int64, cutoff time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"colony_id": colonyID, "status": domain.StatusClosed}).
		Where(squirrel.Lt{"end_date": cutoff}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteClosedBefore - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteClosedBefore - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteClosedBefore - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// execExpectingRow выполняет UPDATE и возвращает ErrBookingNotFound,
// если ни одна строка не была изменена
func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, method, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в заявку
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking      domain.Booking
		relativesRaw []byte
		startDate    sql.NullTime
		endDate      sql.NullTime
		roomID       sql.NullInt64
		createdAt    sql.NullTime
		updatedAt    sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.ColonyID,
		&booking.ColonyApplicationNumber,
		&booking.PrisonerName,
		&booking.VisitType,
		&booking.Status,
		&relativesRaw,
		&booking.TelegramChatID,
		&startDate,
		&endDate,
		&roomID,
		&booking.RejectionReason,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(relativesRaw) > 0 {
		if err := json.Unmarshal(relativesRaw, &booking.Relatives); err != nil {
			return nil, fmt.Errorf("decode relatives: %v", err)
		}
	}

	if startDate.Valid {
		booking.StartDate = &startDate.Time
	}
	if endDate.Valid {
		booking.EndDate = &endDate.Time
	}
	if roomID.Valid {
		room := int(roomID.Int64)
		booking.RoomID = &room
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс заявок
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
