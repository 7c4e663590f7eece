package fixtures

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/sqlite"
	"golang.org/x/crypto/bcrypt"
)

// SeedIfEmpty seeds demo data when the users table is empty. With force it
// also seeds a populated database, as long as the demo admin is missing.
// It returns nil ids when nothing was seeded.
func SeedIfEmpty(ctx context.Context, db *database.DB, force bool) (*SeededDataIDs, error) {
	userRepo := sqlite.NewUserRepository(db)
	count, err := userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		if !force {
			return nil, nil
		}
		if _, err := userRepo.GetByEmail(ctx, AdminEmail); err == nil {
			return nil, nil
		} else if !errors.Is(err, user.ErrUserNotFound) {
			return nil, err
		}
	}
	return Seed(ctx, db)
}

// Seed inserts departments, job titles, employees, the admin account and a
// training program in one transaction.
func Seed(ctx context.Context, db *database.DB) (*SeededDataIDs, error) {
	userRepo := sqlite.NewUserRepository(db)
	employeeRepo := sqlite.NewEmployeeRepository(db)
	departmentRepo := sqlite.NewDepartmentRepository(db)
	jobTitleRepo := sqlite.NewJobTitleRepository(db)
	trainingRepo := sqlite.NewTrainingRepository(db)

	ids := NewSeededDataIDs()
	err := sqlite.WithTransaction(ctx, db, func(txCtx context.Context) error {
		for _, d := range GetDefaultDepartments() {
			created, err := departmentRepo.Create(txCtx, d)
			if err != nil {
				return fmt.Errorf("seed department %s: %w", d.Name, err)
			}
			ids.DepartmentIDs[*d.Code] = created.ID
		}

		for _, jt := range getDefaultJobTitles() {
			title := jt.JobTitle
			deptID := ids.DepartmentIDs[jt.DepartmentCode]
			title.DepartmentID = &deptID
			created, err := jobTitleRepo.Create(txCtx, title)
			if err != nil {
				return fmt.Errorf("seed job title %s: %w", title.Title, err)
			}
			ids.JobTitleIDs[*title.Code] = created.ID
		}

		for _, de := range getDemoEmployees() {
			e := de.Employee
			deptID := ids.DepartmentIDs[de.DepartmentCode]
			jobID := ids.JobTitleIDs[de.JobTitleCode]
			e.DepartmentID = &deptID
			e.JobTitleID = &jobID
			if de.ManagerNumber != "" {
				managerID := ids.EmployeeIDs[de.ManagerNumber]
				e.ManagerID = &managerID
			}
			created, err := employeeRepo.Create(txCtx, e)
			if err != nil {
				return fmt.Errorf("seed employee %s: %w", e.EmployeeNumber, err)
			}
			ids.EmployeeIDs[e.EmployeeNumber] = created.ID
		}

		for _, deptID := range ids.DepartmentIDs {
			if err := departmentRepo.RecountEmployees(txCtx, deptID); err != nil {
				return err
			}
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		adminEmployee := ids.EmployeeIDs["EMP001"]
		admin, err := userRepo.Create(txCtx, user.User{
			Email:        AdminEmail,
			PasswordHash: string(hash),
			Role:         user.RoleAdmin,
			EmployeeID:   &adminEmployee,
		})
		if err != nil {
			return fmt.Errorf("seed admin user: %w", err)
		}
		ids.AdminUserID = admin.ID

		program, err := trainingRepo.CreateProgram(txCtx, GetDefaultTrainingProgram())
		if err != nil {
			return fmt.Errorf("seed training program: %w", err)
		}
		ids.TrainingProgramID = program.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("demo data seeded", "admin_email", AdminEmail, "employees", len(ids.EmployeeIDs))
	return ids, nil
}
