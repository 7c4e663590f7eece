package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestTable(t *testing.T) {
	data, err := Table("Employees", []string{"Number", "Name"}, [][]any{
		{"EMP0000001", "Ada Lovelace"},
		{"EMP0000002", "Alan Turing"},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Employees")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Number", "Name"}, rows[0])
	assert.Equal(t, "Alan Turing", rows[2][1])
}

func TestRenderPayslip(t *testing.T) {
	data, err := RenderPayslip(Payslip{
		Title:    "Payslip",
		Employee: "Ada Lovelace",
		Number:   "EMP0000001",
		Period:   "July 2024",
		Earnings: []PayslipLine{{Label: "Basic Salary", Amount: "10000.00"}},
		Deduct:   []PayslipLine{{Label: "Deductions", Amount: "500.00"}},
		Net:      "10500.00",
		Status:   "pending",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
