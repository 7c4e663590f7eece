package payroll

import (
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestCalculateNetSalary(t *testing.T) {
	cases := []struct {
		basic, allowances, bonuses, overtime, deductions, want string
	}{
		{"10000", "1000", "0", "0", "500", "10500"},
		{"5000", "0", "0", "0", "0", "5000"},
		{"7500.50", "250.25", "100", "80.75", "1000.10", "6931.4"},
	}
	for _, c := range cases {
		got := CalculateNetSalary(dec(c.basic), dec(c.allowances), dec(c.bonuses), dec(c.overtime), dec(c.deductions))
		assert.True(t, got.Equal(dec(c.want)), "got %s want %s", got, c.want)
	}
}

func TestCreatePayrollRequest_ToRecord(t *testing.T) {
	allowances := dec("1000")
	deductions := dec("500")
	req := CreatePayrollRequest{
		EmployeeID:  1,
		Month:       7,
		Year:        2024,
		BasicSalary: dec("10000"),
		Allowances:  &allowances,
		Deductions:  &deductions,
	}
	require.NoError(t, req.Validate())

	rec := req.ToRecord()
	assert.Equal(t, StatusPending, rec.Status)
	assert.True(t, rec.NetSalary.Equal(dec("10500")))
	assert.True(t, rec.Bonuses.IsZero())
}

func TestUpdatePayrollRequest_Apply(t *testing.T) {
	rec := Record{
		BasicSalary: dec("10000"),
		Allowances:  dec("1000"),
		Deductions:  dec("500"),
		Status:      StatusPending,
	}
	rec.RecalculateNet()

	bonus := dec("750")
	req := UpdatePayrollRequest{ID: 1, Bonuses: &bonus}
	require.NoError(t, req.Validate())
	req.Apply(&rec)

	assert.True(t, rec.NetSalary.Equal(dec("11250")))
	assert.True(t, rec.BasicSalary.Equal(dec("10000")))
}

func TestCreatePayrollRequest_Validate(t *testing.T) {
	negative := dec("-1")
	method := "crypto"
	req := CreatePayrollRequest{Month: 13, Deductions: &negative, PaymentMethod: &method}

	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	m := errs.ToMap()
	for _, f := range []string{"employee_id", "month", "year", "basic_salary", "deductions", "payment_method"} {
		assert.Contains(t, m, f)
	}
}

func TestGenerateMonthlyRequest_Validate(t *testing.T) {
	req := GenerateMonthlyRequest{Month: 0, Year: 2024}
	assert.Error(t, req.Validate())
	req.Month = 12
	assert.NoError(t, req.Validate())
}
