package sqlite_test

import (
	"context"
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/department"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository_UniqueConstraints(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewEmployeeRepository(db)
	createTestEmployee(t, db, "EMP00000001", "a@example.com")

	_, err := repo.Create(ctx, employee.Employee{EmployeeNumber: "EMP00000001", FirstName: "X", LastName: "Y"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNumberExists)

	_, err = repo.Create(ctx, employee.Employee{EmployeeNumber: "EMP00000002", FirstName: "X", LastName: "Y", Email: strPtr("a@example.com")})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	_, err = repo.Create(ctx, employee.Employee{EmployeeNumber: "EMP00000003", FirstName: "X", LastName: "Y", DepartmentID: int64Ptr(42)})
	assert.ErrorIs(t, err, employee.ErrInvalidReference)
}

func TestEmployeeRepository_ListAndUpdate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := sqlite.NewEmployeeRepository(db)
	deptRepo := sqlite.NewDepartmentRepository(db)

	dept, err := deptRepo.Create(ctx, department.Department{Name: "Engineering", Code: strPtr("ENG")})
	require.NoError(t, err)

	first := createTestEmployee(t, db, "EMP00000001", "one@example.com")
	createTestEmployee(t, db, "EMP00000002", "two@example.com")

	salary := decimal.NewFromInt(5000)
	require.NoError(t, repo.Update(ctx, employee.UpdateEmployeeRequest{ID: first.ID, DepartmentID: &dept.ID, Salary: &salary}))

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DepartmentName)
	assert.Equal(t, "Engineering", *got.DepartmentName)
	assert.True(t, got.Salary.Valid)
	assert.True(t, salary.Equal(got.Salary.Decimal))

	list, total, err := repo.List(ctx, employee.EmployeeFilter{DepartmentID: &dept.ID, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, first.ID, list[0].ID)

	_, total, err = repo.List(ctx, employee.EmployeeFilter{Search: strPtr("two@"), Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	require.NoError(t, deptRepo.RecountEmployees(ctx, dept.ID))
	d, err := deptRepo.GetByID(ctx, dept.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), d.EmployeeCount)

	require.NoError(t, repo.SoftDelete(ctx, first.ID))
	active, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)

	assert.ErrorIs(t, repo.Update(ctx, employee.UpdateEmployeeRequest{ID: 999, FirstName: strPtr("Z")}), employee.ErrEmployeeNotFound)
}
