package daycare

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

var daycareColumns = []string{
	"id",
	"facility_id",
	"pet_id",
	"check_in_time",
	"check_out_time",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями daycare
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория daycare
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate получает все записи daycare, чей check-in приходится на указанную дату
// Записи НЕ фильтруются по объекту: расчёт загрузки исторически сканирует
// daycare по всем объектам, и это поведение сохранено сознательно
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.DaycareCheckIn, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	day := domain.DateOnly(date)

	query, args, err := psqlbuilder.Select(daycareColumns...).
		From("daycare_check_ins").
		Where(squirrel.GtOrEq{"check_in_time": day}).
		Where(squirrel.Lt{"check_in_time": day.AddDate(0, 0, 1)}).
		OrderBy("check_in_time, id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	checkIns := make([]*domain.DaycareCheckIn, 0)
	for rows.Next() {
		var (
			record               domain.DaycareCheckIn
			checkOut             sql.NullTime
			createdAt, updatedAt sql.NullTime
		)

		err := rows.Scan(
			&record.ID,
			&record.FacilityID,
			&record.PetID,
			&record.CheckInTime,
			&checkOut,
			&record.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByDate - scan check-in: %v", ErrScanRow, err)
		}

		if checkOut.Valid {
			record.CheckOutTime = &checkOut.Time
		}
		record.CreatedAt = createdAt.Time
		record.UpdatedAt = updatedAt.Time

		checkIns = append(checkIns, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDate - iterate rows: %v", ErrScanRow, err)
	}

	return checkIns, nil
}
