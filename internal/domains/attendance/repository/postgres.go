package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms-backend/internal/domains/attendance/model"
	"hrms-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Upsert(ctx context.Context, record *model.AttendanceRecord) (*model.AttendanceRecord, error) {
	// Lookup and write share one transaction so concurrent marks for the
	// same day key serialize on the row instead of losing an update.
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.AttendanceRecord, error) {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM attendance WHERE id = $1)`,
			record.ID,
		).Scan(&exists)
		if err != nil {
			return nil, fmt.Errorf("failed to check attendance record: %w", err)
		}

		var stored model.AttendanceRecord
		if exists {
			err = tx.QueryRow(ctx,
				`UPDATE attendance SET status = $2 WHERE id = $1
				 RETURNING id, employee_id, date, status`,
				record.ID, record.Status,
			).Scan(&stored.ID, &stored.EmployeeID, &stored.Date, &stored.Status)
			if err != nil {
				return nil, fmt.Errorf("failed to update attendance record: %w", err)
			}
		} else {
			err = tx.QueryRow(ctx,
				`INSERT INTO attendance (id, employee_id, date, status)
				 VALUES ($1, $2, $3, $4)
				 RETURNING id, employee_id, date, status`,
				record.ID, record.EmployeeID, record.Date, record.Status,
			).Scan(&stored.ID, &stored.EmployeeID, &stored.Date, &stored.Status)
			if err != nil {
				return nil, fmt.Errorf("failed to insert attendance record: %w", err)
			}
		}

		return &stored, nil
	})
}

func (r *postgresRepository) List(ctx context.Context, filter model.ListAttendanceFilter) ([]model.AttendanceWithEmployee, error) {
	where := []string{}
	args := []interface{}{}
	idx := 1

	if filter.EmployeeID != "" {
		where = append(where, fmt.Sprintf("a.employee_id = $%d", idx))
		args = append(args, filter.EmployeeID)
		idx++
	}
	if filter.DateFrom != nil {
		where = append(where, fmt.Sprintf("a.date >= $%d", idx))
		args = append(args, *filter.DateFrom)
		idx++
	}
	if filter.DateTo != nil {
		where = append(where, fmt.Sprintf("a.date <= $%d", idx))
		args = append(args, *filter.DateTo)
		idx++
	}
	if filter.Status != "" {
		where = append(where, fmt.Sprintf("a.status = $%d", idx))
		args = append(args, filter.Status)
		idx++
	}

	query := `SELECT a.id, a.employee_id, a.date, a.status, e.full_name
	          FROM attendance a
	          JOIN employees e ON a.employee_id = e.employee_id`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY a.date DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	result := []model.AttendanceWithEmployee{}
	for rows.Next() {
		var rec model.AttendanceWithEmployee
		err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.EmployeeName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}

	return result, nil
}

func (r *postgresRepository) ListByEmployee(ctx context.Context, employeeID string) ([]model.AttendanceRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, employee_id, date, status FROM attendance
		 WHERE employee_id = $1 ORDER BY date DESC`,
		employeeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for employee: %w", err)
	}
	defer rows.Close()

	result := []model.AttendanceRecord{}
	for rows.Next() {
		var rec model.AttendanceRecord
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance records: %w", err)
	}

	return result, nil
}

func (r *postgresRepository) Delete(ctx context.Context, attendanceID string) error {
	result, err := r.pool.Exec(ctx,
		`DELETE FROM attendance WHERE id = $1`, attendanceID)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrAttendanceNotFound
	}
	return nil
}

func (r *postgresRepository) CountStatusOnDate(ctx context.Context, date time.Time) (int, int, error) {
	var present, absent int
	err := r.pool.QueryRow(ctx,
		`SELECT
		   COUNT(*) FILTER (WHERE status = $2),
		   COUNT(*) FILTER (WHERE status = $3)
		 FROM attendance WHERE date = $1`,
		date, model.StatusPresent, model.StatusAbsent,
	).Scan(&present, &absent)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count attendance by status: %w", err)
	}
	return present, absent, nil
}
