package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/apperrors"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/domain"
	portsrepo "github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/ports/repositories"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/models"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLeaveRepository struct {
	BaseRepository
}

func newPgxLeaveRepository(db *pgxpool.Pool) portsrepo.LeaveRepositoryWithTx {
	return &PgxLeaveRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxLeaveRepository implements portsrepo.LeaveRepositoryWithTx
var _ portsrepo.LeaveRepositoryWithTx = (*PgxLeaveRepository)(nil)

const leaveColumns = `request_id, emp_id, leave_type, description, days_requested, paid_leave, status, created_at, last_updated_at`

func scanLeaveRequest(row pgx.Row) (*models.LeaveRequest, error) {
	var m models.LeaveRequest
	err := row.Scan(
		&m.RequestID,
		&m.EmployeeID,
		&m.LeaveType,
		&m.Description,
		&m.DaysRequested,
		&m.PaidLeave,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveLeaveRequest inserts a new Pending request and returns the identifier
// assigned by the store.
func (r *PgxLeaveRepository) SaveLeaveRequest(ctx context.Context, request domain.LeaveRequest) (int64, error) {
	m := mapping.ToModelLeaveRequest(request)
	query := `
        INSERT INTO leave_requests (emp_id, leave_type, description, days_requested, paid_leave, status, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING request_id;
    `
	var requestID int64
	err := r.Pool.QueryRow(ctx, query,
		m.EmployeeID,
		m.LeaveType,
		m.Description,
		m.DaysRequested,
		m.PaidLeave,
		m.Status,
		m.CreatedAt,
		m.LastUpdatedAt,
	).Scan(&requestID)
	if err != nil {
		return 0, fmt.Errorf("failed to save leave request for employee %s: %w", request.EmployeeID, err)
	}
	return requestID, nil
}

func (r *PgxLeaveRepository) FindLeaveRequestByID(ctx context.Context, requestID int64) (*domain.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE request_id = $1;`
	m, err := scanLeaveRequest(r.Pool.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find leave request %d: %w", requestID, err)
	}

	d := mapping.ToDomainLeaveRequest(*m)
	return &d, nil
}

func (r *PgxLeaveRepository) FindLeaveRequestsByEmployee(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE emp_id = $1 ORDER BY request_id;`
	return r.queryLeaveRequests(ctx, query, employeeID)
}

func (r *PgxLeaveRepository) FindAllLeaveRequests(ctx context.Context) ([]domain.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + ` FROM leave_requests ORDER BY request_id DESC;`
	return r.queryLeaveRequests(ctx, query)
}

func (r *PgxLeaveRepository) queryLeaveRequests(ctx context.Context, query string, args ...any) ([]domain.LeaveRequest, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	ms := []models.LeaveRequest{}
	for rows.Next() {
		m, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leave request rows: %w", err)
	}

	return mapping.ToDomainLeaveRequestSlice(ms), nil
}

// terminalityGuard rejects a transition attempt on a request that already
// reached Approved or Denied.
func terminalityGuard(requestID int64, status domain.LeaveStatus) error {
	if status.IsTerminal() {
		return fmt.Errorf("%w: request %d is %s", apperrors.ErrAlreadyFinal, requestID, status)
	}
	return nil
}

// balanceGuard rejects an approval that would drive the balance below zero.
// An exact match is allowed and leaves the balance at zero.
func balanceGuard(balance, days int) error {
	if balance < days {
		return fmt.Errorf("%w: balance %d, requested %d", apperrors.ErrInsufficientBalance, balance, days)
	}
	return nil
}

// ApproveLeaveRequest transitions a Pending request to Approved and decrements
// the owning employee's balance in a single transaction. The request row is
// locked first, then the employee row, always in that order so two approvals
// touching the same rows cannot deadlock. Neither write commits without the
// other.
func (r *PgxLeaveRepository) ApproveLeaveRequest(ctx context.Context, requestID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var (
		employeeID string
		days       int
		status     string
	)
	err = tx.QueryRow(ctx,
		`SELECT emp_id, days_requested, status FROM leave_requests WHERE request_id = $1 FOR UPDATE;`,
		requestID,
	).Scan(&employeeID, &days, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock leave request %d: %w", requestID, err)
	}

	if err := terminalityGuard(requestID, domain.LeaveStatus(status)); err != nil {
		return err
	}

	var balance int
	err = tx.QueryRow(ctx,
		`SELECT leave_balance FROM employees WHERE emp_id = $1 FOR UPDATE;`,
		employeeID,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Orphaned request: the employee was deleted after submission.
			return fmt.Errorf("%w: employee %s", apperrors.ErrNotFound, employeeID)
		}
		return fmt.Errorf("failed to lock employee %s: %w", employeeID, err)
	}

	if err := balanceGuard(balance, days); err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE employees SET leave_balance = leave_balance - $2, last_updated_at = now() WHERE emp_id = $1;`,
		employeeID, days,
	)
	if err != nil {
		return fmt.Errorf("failed to decrement balance for employee %s: %w", employeeID, err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE leave_requests SET status = $2, last_updated_at = now() WHERE request_id = $1;`,
		requestID, string(domain.StatusApproved),
	)
	if err != nil {
		return fmt.Errorf("failed to approve leave request %d: %w", requestID, err)
	}

	return r.Commit(ctx, tx)
}

// DenyLeaveRequest transitions a Pending request to Denied under the same row
// lock discipline as approval, so a concurrent approve and deny of one request
// resolve to exactly one winner.
func (r *PgxLeaveRepository) DenyLeaveRequest(ctx context.Context, requestID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var status string
	err = tx.QueryRow(ctx,
		`SELECT status FROM leave_requests WHERE request_id = $1 FOR UPDATE;`,
		requestID,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock leave request %d: %w", requestID, err)
	}

	if err := terminalityGuard(requestID, domain.LeaveStatus(status)); err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE leave_requests SET status = $2, last_updated_at = now() WHERE request_id = $1;`,
		requestID, string(domain.StatusDenied),
	)
	if err != nil {
		return fmt.Errorf("failed to deny leave request %d: %w", requestID, err)
	}

	return r.Commit(ctx, tx)
}
