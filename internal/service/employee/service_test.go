package employee

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/fixtures"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newTestService(t *testing.T) (*EmployeeServiceImpl, *fixtures.SeededDataIDs) {
	t.Helper()
	db, ids := fixtures.NewSeededTestDB(t)
	svc := NewEmployeeService(db, sqlite.NewEmployeeRepository(db), sqlite.NewDepartmentRepository(db)).(*EmployeeServiceImpl)
	return svc, ids
}

func strPtr(s string) *string { return &s }

func newHire(email, nationalID string, deptID int64) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName:    "Lina",
		LastName:     "Haddad",
		Email:        email,
		NationalID:   nationalID,
		HireDate:     "2025-03-01",
		DepartmentID: &deptID,
	}
}

func TestCreateEmployee(t *testing.T) {
	svc, ids := newTestService(t)
	ctx := context.Background()
	itID := ids.DepartmentIDs["IT"]

	created, err := svc.CreateEmployee(ctx, newHire("lina@company.com", "9990001111", itID))
	require.NoError(t, err)
	assert.Regexp(t, `^EMP[0-9A-F]{8}$`, created.EmployeeNumber)

	dept, err := svc.departmentRepo.GetByID(ctx, itID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), dept.EmployeeCount)

	_, err = svc.CreateEmployee(ctx, newHire("lina@company.com", "9990002222", itID))
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	_, err = svc.CreateEmployee(ctx, newHire("other@company.com", "9990001111", itID))
	assert.ErrorIs(t, err, employee.ErrNationalIDExists)
}

func TestCreateEmployee_RetriesNumberCollision(t *testing.T) {
	svc, _ := newTestService(t)
	numbers := []string{"EMP001", "EMP002", "EMPABCDEF12"}
	svc.newNumber = func() string {
		n := numbers[0]
		numbers = numbers[1:]
		return n
	}

	created, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		FirstName: "Omar", LastName: "Saleh", Email: "omar@company.com", NationalID: "5550001111", HireDate: "2025-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "EMPABCDEF12", created.EmployeeNumber)

	svc.newNumber = func() string { return "EMP001" }
	_, err = svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		FirstName: "Omar", LastName: "Saleh", Email: "omar2@company.com", NationalID: "5550002222", HireDate: "2025-01-01",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNumberGeneration)
}

func TestUpdateEmployee_RecountsDepartments(t *testing.T) {
	svc, ids := newTestService(t)
	ctx := context.Background()
	hrID, finID := ids.DepartmentIDs["HR"], ids.DepartmentIDs["FIN"]

	updated, err := svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: ids.EmployeeIDs["EMP005"], DepartmentID: &finID})
	require.NoError(t, err)
	require.NotNil(t, updated.DepartmentName)
	assert.Equal(t, "Finance", *updated.DepartmentName)

	hr, err := svc.departmentRepo.GetByID(ctx, hrID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), hr.EmployeeCount)
	fin, err := svc.departmentRepo.GetByID(ctx, finID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fin.EmployeeCount)

	_, err = svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: ids.EmployeeIDs["EMP005"]})
	assert.Error(t, err)

	_, err = svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{ID: 9999, City: strPtr("Abha")})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteEmployee(t *testing.T) {
	svc, ids := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.DeleteEmployee(ctx, ids.EmployeeIDs["EMP005"]))

	got, err := svc.GetEmployee(ctx, ids.EmployeeIDs["EMP005"])
	require.NoError(t, err)
	assert.Equal(t, "inactive", got.Status)

	hr, err := svc.departmentRepo.GetByID(ctx, ids.DepartmentIDs["HR"])
	require.NoError(t, err)
	assert.Equal(t, int64(1), hr.EmployeeCount)

	assert.ErrorIs(t, svc.DeleteEmployee(ctx, 9999), employee.ErrEmployeeNotFound)
}

func TestListEmployees(t *testing.T) {
	svc, ids := newTestService(t)
	ctx := context.Background()

	all, err := svc.ListEmployees(ctx, employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), all.Pagination.Total)
	assert.Equal(t, 10, all.Pagination.Limit)
	assert.Equal(t, 1, all.Pagination.Pages)

	hrID := ids.DepartmentIDs["HR"]
	hr, err := svc.ListEmployees(ctx, employee.EmployeeFilter{DepartmentID: &hrID, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), hr.Pagination.Total)
	assert.Equal(t, 2, hr.Pagination.Pages)
	assert.Len(t, hr.Employees, 1)

	search, err := svc.ListEmployees(ctx, employee.EmployeeFilter{Search: strPtr("Noura")})
	require.NoError(t, err)
	require.Len(t, search.Employees, 1)
	assert.Equal(t, "EMP004", search.Employees[0].EmployeeNumber)
}

func TestGetStats(t *testing.T) {
	svc, _ := newTestService(t)
	svc.now = func() time.Time { return time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FirstName: "New", LastName: "Hire", Email: "new.hire@company.com", NationalID: "7770001111", HireDate: "2025-03-02",
	})
	require.NoError(t, err)

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), stats.TotalEmployees)
	assert.Equal(t, int64(1), stats.NewHires)
	assert.NotEmpty(t, stats.DepartmentStats)
	assert.NotEmpty(t, stats.GenderStats)
}

func TestExportEmployees(t *testing.T) {
	svc, _ := newTestService(t)

	data, err := svc.ExportEmployees(context.Background(), employee.EmployeeFilter{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Employees")
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "Employee Number", rows[0][0])
}
