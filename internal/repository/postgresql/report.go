package postgresql

import (
	"context"
	"fmt"

	"github.com/chronohr/timekeeping-backend-go/internal/domain/report"
	"github.com/chronohr/timekeeping-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// GetDailyPunches implements report.ReportRepository. Times come back as
// "HH:MM" text with '-' standing in for anything not recorded, which is the
// form the calculation engine consumes directly. Punch timestamps are
// rendered on the wall clock they were stored under.
func (r *reportRepositoryImpl) GetDailyPunches(ctx context.Context, month, year int, employeeID *string) ([]report.DailyPunchRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			e.id, e.employee_code, e.full_name, e.position,
			a.date,
			COALESCE(to_char(wst.clock_in_time, 'HH24:MI'), '-'),
			COALESCE(to_char(wst.clock_out_time, 'HH24:MI'), '-'),
			COALESCE(to_char(a.clock_in, 'HH24:MI'), '-'),
			COALESCE(to_char(a.clock_out, 'HH24:MI'), '-'),
			a.status
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id AND e.deleted_at IS NULL
		LEFT JOIN work_schedule_times wst ON wst.id = a.work_schedule_time_id
		WHERE EXTRACT(MONTH FROM a.date)::int = $1
		  AND EXTRACT(YEAR FROM a.date)::int = $2
		  AND ($3::uuid IS NULL OR e.id = $3::uuid)
		ORDER BY e.employee_code ASC, a.date ASC
	`

	rows, err := q.Query(ctx, query, month, year, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily punches: %w", err)
	}
	defer rows.Close()

	var result []report.DailyPunchRow
	for rows.Next() {
		var row report.DailyPunchRow
		err := rows.Scan(
			&row.EmployeeID, &row.EmployeeCode, &row.EmployeeName, &row.Position,
			&row.Date,
			&row.ScheduledIn, &row.ScheduledOut,
			&row.ActualIn, &row.ActualOut,
			&row.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily punch row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily punch rows: %w", err)
	}

	return result, nil
}
