package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, email, password, role, employee_id, is_active, last_login, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.EmployeeID,
		&u.IsActive,
		&u.LastLogin,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

func (r *userRepositoryImpl) getOne(ctx context.Context, where string, arg any) (user.User, error) {
	q := GetQuerier(ctx, r.db)
	u, err := scanUser(q.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE "+where, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.getOne(ctx, "email = ?", email)
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id int64) (user.User, error) {
	return r.getOne(ctx, "id = ?", id)
}

// GetByEmployeeID implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID int64) (user.User, error) {
	return r.getOne(ctx, "employee_id = ?", employeeID)
}

// GetPrincipal implements user.UserRepository.
func (r *userRepositoryImpl) GetPrincipal(ctx context.Context, id int64) (user.Principal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.email, u.role, u.employee_id,
		       e.first_name, e.last_name, e.department_id, e.job_title_id
		FROM users u
		LEFT JOIN employees e ON u.employee_id = e.id
		WHERE u.id = ? AND u.is_active = 1
	`
	var p user.Principal
	err := q.QueryRowContext(ctx, query, id).Scan(
		&p.UserID,
		&p.Email,
		&p.Role,
		&p.EmployeeID,
		&p.FirstName,
		&p.LastName,
		&p.DepartmentID,
		&p.JobTitleID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.Principal{}, user.ErrUserNotFound
		}
		return user.Principal{}, fmt.Errorf("failed to load principal: %w", err)
	}
	return p, nil
}

// GetProfile implements user.UserRepository.
func (r *userRepositoryImpl) GetProfile(ctx context.Context, id int64) (user.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.email, u.password, u.role, u.employee_id, u.is_active, u.last_login, u.created_at, u.updated_at,
		       e.employee_number, e.first_name, e.last_name, e.phone, e.profile_image,
		       e.department_id, d.name, e.job_title_id, j.title
		FROM users u
		LEFT JOIN employees e ON u.employee_id = e.id
		LEFT JOIN departments d ON e.department_id = d.id
		LEFT JOIN job_titles j ON e.job_title_id = j.id
		WHERE u.id = ?
	`
	var p user.Profile
	err := q.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Email,
		&p.PasswordHash,
		&p.Role,
		&p.EmployeeID,
		&p.IsActive,
		&p.LastLogin,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.EmployeeNumber,
		&p.FirstName,
		&p.LastName,
		&p.Phone,
		&p.ProfileImage,
		&p.DepartmentID,
		&p.DepartmentName,
		&p.JobTitleID,
		&p.JobTitle,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.Profile{}, user.ErrUserNotFound
		}
		return user.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	res, err := q.ExecContext(ctx,
		`INSERT INTO users (email, password, role, employee_id, is_active) VALUES (?, ?, ?, ?, 1)`,
		newUser.Email, newUser.PasswordHash, newUser.Role, newUser.EmployeeID,
	)
	if err != nil {
		if isUniqueViolation(err, "users.email") {
			return user.User{}, user.ErrUserEmailExists
		}
		if isForeignKeyViolation(err) {
			return user.User{}, user.ErrNoEmployeeLink
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return user.User{}, fmt.Errorf("failed to read user id: %w", err)
	}
	return r.GetByID(ctx, id)
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []user.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Count implements user.UserRepository.
func (r *userRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)
	var n int64
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

func (r *userRepositoryImpl) execOne(ctx context.Context, query string, args ...any) error {
	q := GetQuerier(ctx, r.db)
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return r.execOne(ctx, `UPDATE users SET password = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, passwordHash, id)
}

// UpdateLastLogin implements user.UserRepository.
func (r *userRepositoryImpl) UpdateLastLogin(ctx context.Context, id int64) error {
	return r.execOne(ctx, `UPDATE users SET last_login = CURRENT_TIMESTAMP WHERE id = ?`, id)
}

// UpdateStatus implements user.UserRepository.
func (r *userRepositoryImpl) UpdateStatus(ctx context.Context, id int64, isActive bool) error {
	return r.execOne(ctx, `UPDATE users SET is_active = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, isActive, id)
}
