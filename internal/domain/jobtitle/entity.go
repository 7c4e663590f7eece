package jobtitle

import (
	"time"

	"github.com/shopspring/decimal"
)

type JobTitle struct {
	ID               int64
	Title            string
	Code             *string
	DepartmentID     *int64
	Level            *string
	Description      *string
	Responsibilities *string
	Requirements     *string
	MinSalary        decimal.NullDecimal
	MaxSalary        decimal.NullDecimal
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Join
	DepartmentName *string
}
