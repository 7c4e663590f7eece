package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollSelect = `
	SELECT p.id, p.employee_id, p.month, p.year, p.basic_salary, p.allowances, p.bonuses, p.deductions,
	       p.overtime_hours, p.overtime_amount, p.net_salary, p.payment_date, p.payment_method, p.status,
	       p.notes, p.created_at, p.updated_at,
	       e.employee_number, e.first_name || ' ' || e.last_name, e.email, d.name, j.title
	FROM payroll p
	JOIN employees e ON p.employee_id = e.id
	LEFT JOIN departments d ON e.department_id = d.id
	LEFT JOIN job_titles j ON e.job_title_id = j.id
`

func scanPayroll(row interface{ Scan(...any) error }) (payroll.Record, error) {
	var p payroll.Record
	err := row.Scan(
		&p.ID,
		&p.EmployeeID,
		&p.Month,
		&p.Year,
		&p.BasicSalary,
		&p.Allowances,
		&p.Bonuses,
		&p.Deductions,
		&p.OvertimeHours,
		&p.OvertimeAmount,
		&p.NetSalary,
		&p.PaymentDate,
		&p.PaymentMethod,
		&p.Status,
		&p.Notes,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.EmployeeNumber,
		&p.EmployeeName,
		&p.EmployeeEmail,
		&p.DepartmentName,
		&p.JobTitle,
	)
	return p, err
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, p payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	status := p.Status
	if status == "" {
		status = payroll.StatusPending
	}
	res, err := q.ExecContext(ctx, `
		INSERT INTO payroll (
			employee_id, month, year, basic_salary, allowances, bonuses, deductions,
			overtime_hours, overtime_amount, net_salary, payment_method, status, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.EmployeeID, p.Month, p.Year, p.BasicSalary, p.Allowances, p.Bonuses, p.Deductions,
		p.OvertimeHours, p.OvertimeAmount, p.NetSalary, p.PaymentMethod, status, p.Notes,
	)
	if err != nil {
		if isUniqueViolation(err, "payroll.") {
			return payroll.Record{}, payroll.ErrPayrollRecordAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return payroll.Record{}, payroll.ErrEmployeeNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to create payroll record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return payroll.Record{}, fmt.Errorf("failed to read payroll id: %w", err)
	}
	return r.GetByID(ctx, id)
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id int64) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPayroll(q.QueryRowContext(ctx, payrollSelect+" WHERE p.id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return payroll.Record{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record with id %d: %w", id, err)
	}
	return p, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1 = 1"}
	args := []any{}
	if filter.EmployeeID != nil {
		conditions = append(conditions, "p.employee_id = ?")
		args = append(args, *filter.EmployeeID)
	}
	if filter.Month != nil {
		conditions = append(conditions, "p.month = ?")
		args = append(args, *filter.Month)
	}
	if filter.Year != nil {
		conditions = append(conditions, "p.year = ?")
		args = append(args, *filter.Year)
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, "p.status = ?")
		args = append(args, *filter.Status)
	}

	query := payrollSelect + " WHERE " + strings.Join(conditions, " AND ") + " ORDER BY p.year DESC, p.month DESC, e.last_name"
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	records := []payroll.Record{}
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Update(ctx context.Context, p payroll.Record) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `
		UPDATE payroll
		SET basic_salary = ?, allowances = ?, bonuses = ?, deductions = ?, overtime_hours = ?,
		    overtime_amount = ?, net_salary = ?, payment_date = ?, payment_method = ?, status = ?,
		    notes = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		p.BasicSalary, p.Allowances, p.Bonuses, p.Deductions, p.OvertimeHours,
		p.OvertimeAmount, p.NetSalary, p.PaymentDate, p.PaymentMethod, p.Status,
		p.Notes, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payroll record with id %d: %w", p.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return payroll.ErrPayrollRecordNotFound
	}
	return nil
}

// MarkPaid implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) MarkPaid(ctx context.Context, id int64, paymentDate string) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx,
		`UPDATE payroll SET status = 'paid', payment_date = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		paymentDate, id,
	)
	if err != nil {
		return fmt.Errorf("failed to approve payroll record %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return payroll.ErrPayrollRecordNotFound
	}
	return nil
}

// Delete implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx, `DELETE FROM payroll WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return payroll.ErrPayrollRecordNotFound
	}
	return nil
}

// CountForPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CountForPeriod(ctx context.Context, month, year int) (int64, error) {
	q := GetQuerier(ctx, r.db)
	var n int64
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM payroll WHERE month = ? AND year = ?`, month, year).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count payroll period: %w", err)
	}
	return n, nil
}

// ListEligible implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListEligible(ctx context.Context) ([]payroll.Eligible, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.QueryContext(ctx, `SELECT id, salary FROM employees WHERE status = 'active' AND salary > 0 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible employees: %w", err)
	}
	defer rows.Close()

	eligible := []payroll.Eligible{}
	for rows.Next() {
		var e payroll.Eligible
		if err := rows.Scan(&e.EmployeeID, &e.Salary); err != nil {
			return nil, fmt.Errorf("failed to scan eligible employee: %w", err)
		}
		eligible = append(eligible, e)
	}
	return eligible, rows.Err()
}

// GetTotals implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetTotals(ctx context.Context, month, year int) (payroll.Totals, error) {
	q := GetQuerier(ctx, r.db)

	var t payroll.Totals
	err := q.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(net_salary), 0),
		       COALESCE(SUM(CASE WHEN status = 'paid' THEN net_salary ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = 'pending' THEN net_salary ELSE 0 END), 0)
		FROM payroll
		WHERE month = ? AND year = ?`, month, year,
	).Scan(&t.TotalRecords, &t.TotalPayroll, &t.PaidAmount, &t.PendingAmount)
	if err != nil {
		return payroll.Totals{}, fmt.Errorf("failed to load payroll totals: %w", err)
	}
	return t, nil
}

// GetDepartmentTotals implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetDepartmentTotals(ctx context.Context, month, year int) ([]payroll.DepartmentTotal, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.QueryContext(ctx, `
		SELECT d.name, COUNT(p.id), COALESCE(SUM(p.net_salary), 0)
		FROM payroll p
		JOIN employees e ON p.employee_id = e.id
		LEFT JOIN departments d ON e.department_id = d.id
		WHERE p.month = ? AND p.year = ?
		GROUP BY d.id, d.name
		ORDER BY 3 DESC`, month, year,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load department payroll: %w", err)
	}
	defer rows.Close()

	totals := []payroll.DepartmentTotal{}
	for rows.Next() {
		var t payroll.DepartmentTotal
		if err := rows.Scan(&t.Department, &t.EmployeeCount, &t.TotalSalary); err != nil {
			return nil, fmt.Errorf("failed to scan department payroll: %w", err)
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
