package boarding

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
	"github.com/PawCareDash/PCD-FacilityService/pkg/dbmetrics"
	"github.com/PawCareDash/PCD-FacilityService/pkg/psqlbuilder"
)

var boardingColumns = []string{
	"id",
	"facility_id",
	"pet_id",
	"check_in_date",
	"check_out_date",
	"status",
	"kennel_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с boarding-гостями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория boarding
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetSpanningDate получает всех гостей, чей интервал проживания содержит дату
// (включительно с обеих сторон). Отменённые гости НЕ исключаются: occupancy
// считает их сознательно, а arrivals/departures фильтруют статус выше по стеку.
// Как и daycare, выборка не фильтруется по объекту
func (r *Repository) GetSpanningDate(ctx context.Context, date time.Time) ([]*domain.BoardingGuest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	day := domain.DateOnly(date)

	query, args, err := psqlbuilder.Select(boardingColumns...).
		From("boarding_guests").
		Where(squirrel.LtOrEq{"check_in_date": day}).
		Where(squirrel.GtOrEq{"check_out_date": day}).
		OrderBy("check_in_date, id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSpanningDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSpanningDate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	guests := make([]*domain.BoardingGuest, 0)
	for rows.Next() {
		var (
			guest                domain.BoardingGuest
			kennelID             sql.NullInt64
			createdAt, updatedAt sql.NullTime
		)

		err := rows.Scan(
			&guest.ID,
			&guest.FacilityID,
			&guest.PetID,
			&guest.CheckInDate,
			&guest.CheckOutDate,
			&guest.Status,
			&kennelID,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetSpanningDate - scan guest: %v", ErrScanRow, err)
		}

		if kennelID.Valid {
			guest.KennelID = &kennelID.Int64
		}
		guest.CreatedAt = createdAt.Time
		guest.UpdatedAt = updatedAt.Time

		guests = append(guests, &guest)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSpanningDate - iterate rows: %v", ErrScanRow, err)
	}

	return guests, nil
}
