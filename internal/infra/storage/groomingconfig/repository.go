package groomingconfig

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
	"github.com/PawCareDash/PCD-FacilityService/pkg/dbmetrics"
	"github.com/PawCareDash/PCD-FacilityService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с конфигурацией груминга объекта
// Правила бронирования и расписание хранятся JSONB блобами: они читаются
// и пишутся только целиком, и их структура меняется чаще, чем схема таблицы
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации груминга
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByFacility получает конфигурацию груминга по ID объекта
func (r *Repository) GetByFacility(ctx context.Context, facilityID int64) (*domain.GroomingFacilityConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"facility_id",
		"enabled",
		"booking_rules",
		"operating_hours",
		"created_at",
		"updated_at",
	).
		From("grooming_facility_configs").
		Where(squirrel.Eq{"facility_id": facilityID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacility - build select query: %v", ErrBuildQuery, err)
	}

	var (
		config               domain.GroomingFacilityConfig
		rulesRaw, hoursRaw   []byte
		createdAt, updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.FacilityID,
		&config.Enabled,
		&rulesRaw,
		&hoursRaw,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFacility - scan config: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(rulesRaw, &config.BookingRules); err != nil {
		return nil, fmt.Errorf("%w: GetByFacility - booking rules: %v", ErrDecode, err)
	}
	if err := json.Unmarshal(hoursRaw, &config.OperatingHours); err != nil {
		return nil, fmt.Errorf("%w: GetByFacility - operating hours: %v", ErrDecode, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// Upsert создает или полностью заменяет конфигурацию груминга объекта
func (r *Repository) Upsert(ctx context.Context, config *domain.GroomingFacilityConfig) (*domain.GroomingFacilityConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rulesRaw, err := json.Marshal(config.BookingRules)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - booking rules: %v", ErrEncode, err)
	}
	hoursRaw, err := json.Marshal(config.OperatingHours)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - operating hours: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert("grooming_facility_configs").
		Columns(
			"facility_id",
			"enabled",
			"booking_rules",
			"operating_hours",
		).
		Values(
			config.FacilityID,
			config.Enabled,
			rulesRaw,
			hoursRaw,
		).
		Suffix(`ON CONFLICT (facility_id) DO UPDATE SET
			enabled = EXCLUDED.enabled,
			booking_rules = EXCLUDED.booking_rules,
			operating_hours = EXCLUDED.operating_hours,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}
