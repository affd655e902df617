package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/apperrors"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/domain"
	portsrepo "github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/ports/repositories"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/models"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolationCode is the PostgreSQL error code for unique constraint violations.
const uniqueViolationCode = "23505"

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(db *pgxpool.Pool) portsrepo.EmployeeRepositoryWithTx {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxEmployeeRepository implements portsrepo.EmployeeRepositoryWithTx
var _ portsrepo.EmployeeRepositoryWithTx = (*PgxEmployeeRepository)(nil)

const employeeColumns = `emp_id, name, password_hash, salt, leave_balance, role, created_at, last_updated_at`

func scanEmployee(row pgx.Row) (*models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID,
		&m.Name,
		&m.PasswordHash,
		&m.Salt,
		&m.LeaveBalance,
		&m.Role,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveEmployee inserts a new employee record. The duplicate-ID check and the
// insert run in one transaction so a concurrent create of the same ID cannot
// slip between them; the unique constraint backs the check up.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var exists int
	err = tx.QueryRow(ctx, `SELECT 1 FROM employees WHERE emp_id = $1;`, employee.EmployeeID).Scan(&exists)
	if err == nil {
		return fmt.Errorf("%w: employee ID %s", apperrors.ErrDuplicate, employee.EmployeeID)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to check employee ID %s: %w", employee.EmployeeID, err)
	}

	m := mapping.ToModelEmployee(employee)
	query := `
        INSERT INTO employees (emp_id, name, password_hash, salt, leave_balance, role, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err = tx.Exec(ctx, query,
		m.EmployeeID,
		m.Name,
		m.PasswordHash,
		m.Salt,
		m.LeaveBalance,
		m.Role,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: employee ID %s", apperrors.ErrDuplicate, employee.EmployeeID)
		}
		return fmt.Errorf("failed to save employee %s: %w", employee.EmployeeID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE emp_id = $1;`
	m, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by ID %s: %w", employeeID, err)
	}

	d := mapping.ToDomainEmployee(*m)
	return &d, nil
}

func (r *PgxEmployeeRepository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY emp_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	ms := []models.Employee{}
	for rows.Next() {
		m, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", err)
	}

	return mapping.ToDomainEmployeeSlice(ms), nil
}

// UpdateEmployee rewrites the row with the patch applied. The read and the
// write run in one transaction with the row locked, so a balance decrement
// committed by a concurrent approval cannot be clobbered by a name-only
// update racing against it.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employeeID string, patch domain.EmployeePatch) (*domain.Employee, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE emp_id = $1 FOR UPDATE;`
	m, err := scanEmployee(tx.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock employee %s: %w", employeeID, err)
	}

	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.PasswordHash != nil {
		m.PasswordHash = *patch.PasswordHash
	}
	if patch.Salt != nil {
		m.Salt = *patch.Salt
	}
	if patch.LeaveBalance != nil {
		m.LeaveBalance = *patch.LeaveBalance
	}
	if patch.Role != nil {
		m.Role = *patch.Role
	}
	m.LastUpdatedAt = time.Now().UTC()

	_, err = tx.Exec(ctx, `
        UPDATE employees
        SET name = $2, password_hash = $3, salt = $4, leave_balance = $5, role = $6, last_updated_at = $7
        WHERE emp_id = $1;
    `,
		m.EmployeeID,
		m.Name,
		m.PasswordHash,
		m.Salt,
		m.LeaveBalance,
		m.Role,
		m.LastUpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update employee %s: %w", employeeID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	d := mapping.ToDomainEmployee(*m)
	return &d, nil
}

// DeleteEmployee removes the employee row. Leave requests referencing the
// employee are intentionally left behind.
func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM employees WHERE emp_id = $1;`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AdjustBalance applies delta to the stored balance under a row lock so the
// precondition check and the write cannot interleave with a concurrent
// mutation of the same employee.
func (r *PgxEmployeeRepository) AdjustBalance(ctx context.Context, employeeID string, delta int) (int, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	var balance int
	err = tx.QueryRow(ctx, `SELECT leave_balance FROM employees WHERE emp_id = $1 FOR UPDATE;`, employeeID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, fmt.Errorf("failed to lock employee %s: %w", employeeID, err)
	}

	newBalance := balance + delta
	if newBalance < 0 {
		return 0, fmt.Errorf("%w: balance %d, delta %d", apperrors.ErrInsufficientBalance, balance, delta)
	}

	_, err = tx.Exec(ctx, `UPDATE employees SET leave_balance = $2, last_updated_at = now() WHERE emp_id = $1;`, employeeID, newBalance)
	if err != nil {
		return 0, fmt.Errorf("failed to adjust balance for employee %s: %w", employeeID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return newBalance, nil
}
