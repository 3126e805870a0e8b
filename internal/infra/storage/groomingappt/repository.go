package groomingappt

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/PawCareDash/PCD-FacilityService/internal/domain"
	"github.com/PawCareDash/PCD-FacilityService/pkg/dbmetrics"
	"github.com/PawCareDash/PCD-FacilityService/pkg/psqlbuilder"
	"github.com/PawCareDash/PCD-FacilityService/pkg/types"
)

var appointmentColumns = []string{
	"id",
	"facility_id",
	"pet_id",
	"appointment_date",
	"start_time",
	"end_time",
	"groomer_id",
	"category_id",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями на груминг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей на груминг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate получает все записи на груминг на указанную дату (по всем объектам)
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.GroomingAppointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("grooming_appointments").
		Where(squirrel.Eq{"appointment_date": domain.DateOnly(date)}).
		OrderBy("start_time, id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.GroomingAppointment, 0)
	for rows.Next() {
		var (
			appt                 domain.GroomingAppointment
			startTime, endTime   string
			groomerID            sql.NullInt64
			categoryID           sql.NullString
			createdAt, updatedAt sql.NullTime
		)

		err := rows.Scan(
			&appt.ID,
			&appt.FacilityID,
			&appt.PetID,
			&appt.Date,
			&startTime,
			&endTime,
			&groomerID,
			&categoryID,
			&appt.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByDate - scan appointment: %v", ErrScanRow, err)
		}

		appt.StartTime = toTimeString(startTime)
		appt.EndTime = toTimeString(endTime)
		if groomerID.Valid {
			appt.GroomerID = &groomerID.Int64
		}
		if categoryID.Valid {
			appt.CategoryID = &categoryID.String
		}
		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDate - iterate rows: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// toTimeString обрезает значение колонки TIME ("08:30:00") до формата HH:MM
func toTimeString(s string) types.TimeString {
	if len(s) > 5 {
		s = s[:5]
	}
	return types.TimeString(s)
}
