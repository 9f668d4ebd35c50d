package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrms-backend/internal/domains/employee/model"
	"hrms-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, emp *model.Employee) error {
	// Duplicate checks and the insert run in one transaction. The unique
	// constraints remain the second line of defense.
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM employees WHERE employee_id = $1)`,
			emp.EmployeeID,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check employee id: %w", err)
		}
		if exists {
			return model.ErrDuplicateEmployeeID
		}

		err = tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM employees WHERE email = $1)`,
			emp.Email,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return model.ErrDuplicateEmail
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO employees (employee_id, full_name, email, department)
			 VALUES ($1, $2, $3, $4)`,
			emp.EmployeeID, emp.FullName, emp.Email, emp.Department,
		)
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}

		return nil
	})
}

func (r *postgresRepository) GetByID(ctx context.Context, employeeID string) (*model.Employee, error) {
	query := `SELECT employee_id, full_name, email, department
	          FROM employees WHERE employee_id = $1`

	var emp model.Employee
	err := r.pool.QueryRow(ctx, query, employeeID).
		Scan(&emp.EmployeeID, &emp.FullName, &emp.Email, &emp.Department)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return &emp, nil
}

func (r *postgresRepository) Exists(ctx context.Context, employeeID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM employees WHERE employee_id = $1)`,
		employeeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) List(ctx context.Context, filter model.ListEmployeeFilter) ([]model.Employee, error) {
	where := []string{}
	args := []interface{}{}
	idx := 1

	if filter.Department != "" {
		where = append(where, fmt.Sprintf("department = $%d", idx))
		args = append(args, filter.Department)
		idx++
	}
	if filter.Search != "" {
		where = append(where, fmt.Sprintf("(full_name ILIKE $%d OR email ILIKE $%d)", idx, idx))
		args = append(args, "%"+filter.Search+"%")
		idx++
	}

	query := `SELECT employee_id, full_name, email, department FROM employees`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY full_name ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	result := []model.Employee{}
	for rows.Next() {
		var emp model.Employee
		if err := rows.Scan(&emp.EmployeeID, &emp.FullName, &emp.Email, &emp.Department); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		result = append(result, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return result, nil
}

func (r *postgresRepository) Delete(ctx context.Context, employeeID string) error {
	// Attendance rows go with the employee via ON DELETE CASCADE.
	result, err := r.pool.Exec(ctx,
		`DELETE FROM employees WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrEmployeeNotFound
	}
	return nil
}

func (r *postgresRepository) ListDepartments(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT department FROM employees ORDER BY department ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	result := []string{}
	for rows.Next() {
		var dept string
		if err := rows.Scan(&dept); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		result = append(result, dept)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read departments: %w", err)
	}

	return result, nil
}

func (r *postgresRepository) CountEmployees(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) CountDepartments(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(DISTINCT department) FROM employees`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count departments: %w", err)
	}
	return count, nil
}
