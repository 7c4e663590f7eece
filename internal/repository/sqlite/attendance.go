package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceSelect = `
	SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out, a.work_hours, a.status, a.notes,
	       a.created_at, a.updated_at,
	       e.employee_number, e.first_name || ' ' || e.last_name, d.name
	FROM attendance a
	JOIN employees e ON a.employee_id = e.id
	LEFT JOIN departments d ON e.department_id = d.id
`

func scanAttendance(row interface{ Scan(...any) error }) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.EmployeeID,
		&a.Date,
		&a.CheckIn,
		&a.CheckOut,
		&a.WorkHours,
		&a.Status,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.EmployeeNumber,
		&a.EmployeeName,
		&a.DepartmentName,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx,
		`INSERT INTO attendance (employee_id, date, check_in, status, notes) VALUES (?, ?, ?, ?, ?)`,
		a.EmployeeID, a.Date, a.CheckIn, a.Status, a.Notes,
	)
	if err != nil {
		if isUniqueViolation(err, "attendance.") {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to read attendance id: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id int64) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAttendance(q.QueryRowContext(ctx, attendanceSelect+" WHERE a.id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance with id %d: %w", id, err)
	}
	return a, nil
}

// GetOpenByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetOpenByEmployeeAndDate(ctx context.Context, employeeID int64, date string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAttendance(q.QueryRowContext(ctx,
		attendanceSelect+" WHERE a.employee_id = ? AND a.date = ? AND a.check_in IS NOT NULL AND a.check_out IS NULL",
		employeeID, date,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNoOpenCheckIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get open attendance: %w", err)
	}
	return a, nil
}

// CloseCheckIn implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CloseCheckIn(ctx context.Context, id int64, checkOut string, workHours float64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `
		UPDATE attendance SET check_out = ?, work_hours = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND check_out IS NULL`,
		checkOut, workHours, id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to check out attendance %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest, workHours *float64) error {
	q := GetQuerier(ctx, r.db)

	var u updateSet
	if req.CheckIn != nil {
		u.set("check_in", nullIfEmpty(req.CheckIn))
	}
	if req.CheckOut != nil {
		u.set("check_out", nullIfEmpty(req.CheckOut))
	}
	if req.Status != nil {
		u.set("status", *req.Status)
	}
	if req.Notes != nil {
		u.set("notes", nullIfEmpty(req.Notes))
	}
	if workHours != nil {
		u.set("work_hours", *workHours)
	}
	if u.empty() {
		return nil
	}

	query, args := u.query("attendance", "id = ?", req.ID)
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update attendance with id %d: %w", req.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// List implements attendance.AttendanceRepository. Month and year filters
// are resolved into StartDate and EndDate by the caller.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1 = 1"}
	args := []any{}
	if filter.EmployeeID != nil {
		conditions = append(conditions, "a.employee_id = ?")
		args = append(args, *filter.EmployeeID)
	}
	if filter.StartDate != nil {
		conditions = append(conditions, "a.date >= ?")
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "a.date <= ?")
		args = append(args, *filter.EndDate)
	}

	query := attendanceSelect + " WHERE " + strings.Join(conditions, " AND ") + " ORDER BY a.date DESC, a.check_in DESC"
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// GetStats implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetStats(ctx context.Context, employeeID int64, from, to string) (attendance.Stats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN status = 'present' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = 'absent' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = 'late' THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(work_hours), 0),
		       COALESCE(AVG(work_hours), 0)
		FROM attendance
		WHERE employee_id = ? AND date >= ? AND date <= ?
	`
	var s attendance.Stats
	err := q.QueryRowContext(ctx, query, employeeID, from, to).Scan(
		&s.TotalDays,
		&s.PresentDays,
		&s.AbsentDays,
		&s.LateDays,
		&s.TotalHours,
		&s.AvgHours,
	)
	if err != nil {
		return attendance.Stats{}, fmt.Errorf("failed to load attendance stats: %w", err)
	}
	return s, nil
}
