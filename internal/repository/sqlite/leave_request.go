package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestSelect = `
	SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date, lr.days_count, lr.reason,
	       lr.status, lr.approved_by, lr.approval_date, lr.approval_notes, lr.created_at, lr.updated_at,
	       e.first_name || ' ' || e.last_name, e.employee_number,
	       CASE WHEN a.id IS NULL THEN NULL ELSE a.first_name || ' ' || a.last_name END
	FROM leave_requests lr
	JOIN employees e ON lr.employee_id = e.id
	LEFT JOIN employees a ON lr.approved_by = a.id
`

func scanLeaveRequest(row interface{ Scan(...any) error }) (leave.Request, error) {
	var lr leave.Request
	err := row.Scan(
		&lr.ID,
		&lr.EmployeeID,
		&lr.LeaveType,
		&lr.StartDate,
		&lr.EndDate,
		&lr.DaysCount,
		&lr.Reason,
		&lr.Status,
		&lr.ApprovedBy,
		&lr.ApprovalDate,
		&lr.ApprovalNotes,
		&lr.CreatedAt,
		&lr.UpdatedAt,
		&lr.EmployeeName,
		&lr.EmployeeNumber,
		&lr.ApproverName,
	)
	return lr, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `
		INSERT INTO leave_requests (employee_id, leave_type, start_date, end_date, days_count, reason, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		req.EmployeeID, req.LeaveType, req.StartDate, req.EndDate, req.DaysCount, req.Reason, leave.StatusPending,
	)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to read leave request id: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id int64) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	lr, err := scanLeaveRequest(q.QueryRowContext(ctx, leaveRequestSelect+" WHERE lr.id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request with id %d: %w", id, err)
	}
	return lr, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1 = 1"}
	args := []any{}
	if filter.EmployeeID != nil {
		conditions = append(conditions, "lr.employee_id = ?")
		args = append(args, *filter.EmployeeID)
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, "lr.status = ?")
		args = append(args, *filter.Status)
	}
	if filter.LeaveType != nil && *filter.LeaveType != "" {
		conditions = append(conditions, "lr.leave_type = ?")
		args = append(args, *filter.LeaveType)
	}

	query := leaveRequestSelect + " WHERE " + strings.Join(conditions, " AND ") + " ORDER BY lr.created_at DESC, lr.id DESC"
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests := []leave.Request{}
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// HasOverlap implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) HasOverlap(ctx context.Context, employeeID int64, start, end string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM leave_requests
			WHERE employee_id = ? AND status IN ('pending', 'approved')
			  AND start_date <= ? AND end_date >= ?
		)`, employeeID, end, start,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check leave overlap: %w", err)
	}
	return exists, nil
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status leave.Status, approvedBy *int64, approvalDate *string, notes *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `
		UPDATE leave_requests
		SET status = ?, approved_by = ?, approval_date = ?, approval_notes = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND status = 'pending'`,
		status, approvedBy, approvalDate, notes, id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update leave request %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
