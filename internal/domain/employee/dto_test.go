package employee

import (
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	req := CreateEmployeeRequest{
		FirstName:  "Sara",
		LastName:   "Ali",
		Email:      "sara@hrms.com",
		NationalID: "1000000001",
		HireDate:   "2024-01-15",
	}
	require.NoError(t, req.Validate())

	negative := decimal.NewFromInt(-1)
	gender := "unknown"
	bad := CreateEmployeeRequest{Email: "nope", HireDate: "15/01/2024", Salary: &negative, Gender: &gender}
	var errs validator.ValidationErrors
	require.ErrorAs(t, bad.Validate(), &errs)
	m := errs.ToMap()
	for _, field := range []string{"first_name", "last_name", "email", "national_id", "hire_date", "salary", "gender"} {
		assert.Contains(t, m, field)
	}
}

func TestUpdateEmployeeRequest_Validate(t *testing.T) {
	empty := UpdateEmployeeRequest{ID: 1}
	assert.Error(t, empty.Validate())

	status := "retired"
	req := UpdateEmployeeRequest{ID: 1, Status: &status}
	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	assert.Contains(t, errs.ToMap(), "status")

	self := int64(1)
	req = UpdateEmployeeRequest{ID: 1, ManagerID: &self}
	assert.Error(t, req.Validate())

	city := "Riyadh"
	req = UpdateEmployeeRequest{ID: 1, City: &city}
	assert.NoError(t, req.Validate())
}
