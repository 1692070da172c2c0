package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/test-dunyo/meet-booking-service/internal/domain"
	"github.com/test-dunyo/meet-booking-service/pkg/dbmetrics"
	"github.com/test-dunyo/meet-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий настроек колоний.
// Настройки хранятся явной записью на колонию (а не строковыми ключами):
// количество комнат и Telegram-группа администраторов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByColony получает настройки колонии
func (r *Repository) GetByColony(ctx context.Context, colonyID int64) (*domain.ColonySettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"colony_id",
		"rooms_count",
		"admin_chat_id",
		"created_at",
		"updated_at",
	).
		From("colony_settings").
		Where(squirrel.Eq{"colony_id": colonyID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByColony - build select query: %v", ErrBuildQuery, err)
	}

	var (
		settings  domain.ColonySettings
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&settings.ColonyID,
		&settings.RoomsCount,
		&settings.AdminChatID,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByColony - scan settings: %v", ErrScanRow, err)
	}

	settings.CreatedAt = createdAt.Time
	settings.UpdatedAt = updatedAt.Time

	return &settings, nil
}

// List получает настройки всех колоний (для планировщика ночной очистки)
func (r *Repository) List(ctx context.Context) ([]*domain.ColonySettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"colony_id",
		"rooms_count",
		"admin_chat_id",
		"created_at",
		"updated_at",
	).
		From("colony_settings").
		OrderBy("colony_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.ColonySettings, 0)
	for rows.Next() {
		var (
			settings  domain.ColonySettings
			createdAt sql.NullTime
			updatedAt sql.NullTime
		)
		err := rows.Scan(
			&settings.ColonyID,
			&settings.RoomsCount,
			&settings.AdminChatID,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		settings.CreatedAt = createdAt.Time
		settings.UpdatedAt = updatedAt.Time
		result = append(result, &settings)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpdateRoomsCount меняет количество комнат для свиданий в колонии
func (r *Repository) UpdateRoomsCount(ctx context.Context, colonyID int64, roomsCount int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("colony_settings").
		Set("rooms_count", roomsCount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"colony_id": colonyID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateRoomsCount - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRoomsCount - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateRoomsCount - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSettingsNotFound
	}

	return nil
}
