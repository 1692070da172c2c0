package sanitary

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/test-dunyo/meet-booking-service/pkg/dbmetrics"
	"github.com/test-dunyo/meet-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий санитарных дней.
// День считается санитарным для колонии, если существует строка (colony, day)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория санитарных дней
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByColony получает все санитарные дни колонии
func (r *Repository) ListByColony(ctx context.Context, colonyID int64) ([]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day").
		From("sanitary_days").
		Where(squirrel.Eq{"colony_id": colonyID}).
		OrderBy("day ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByColony - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryDays(ctx, executor, "ListByColony", query, args)
}

// ListRange получает санитарные дни колонии в диапазоне [from, to]
// (диапазон включает границы). Используется перед пакетным распределением,
// чтобы один раз загрузить календарь на весь горизонт поиска
func (r *Repository) ListRange(ctx context.Context, colonyID int64, from, to time.Time) ([]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day").
		From("sanitary_days").
		Where(squirrel.Eq{"colony_id": colonyID}).
		Where(squirrel.GtOrEq{"day": from}).
		Where(squirrel.LtOrEq{"day": to}).
		OrderBy("day ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRange - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryDays(ctx, executor, "ListRange", query, args)
}

// Add добавляет санитарный день. Повторное добавление того же дня не ошибка
func (r *Repository) Add(ctx context.Context, colonyID int64, day time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sanitary_days").
		Columns("colony_id", "day").
		Values(colonyID, day).
		Suffix("ON CONFLICT (colony_id, day) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Add - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Add - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Remove удаляет санитарный день
func (r *Repository) Remove(ctx context.Context, colonyID int64, day time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("sanitary_days").
		Where(squirrel.Eq{"colony_id": colonyID, "day": day}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Remove - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Remove - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Remove - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDayNotFound
	}

	return nil
}

func (r *Repository) queryDays(ctx context.Context, executor dbmetrics.DBExecutor, method, query string, args []interface{}) ([]time.Time, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	days := make([]time.Time, 0)
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("%w: %s - scan day: %v", ErrScanRow, method, err)
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return days, nil
}
