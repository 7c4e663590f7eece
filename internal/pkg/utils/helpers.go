package utils

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"

	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatTime renders t as HH:MM:SS.
func FormatTime(t time.Time) string {
	return t.Format(timeLayout)
}

// CalculateWorkHours returns the decimal hours between two HH:MM:SS clock
// times, rounded to two places.
func CalculateWorkHours(checkIn, checkOut string) (float64, error) {
	in, err := time.Parse(timeLayout, checkIn)
	if err != nil {
		return 0, fmt.Errorf("invalid check-in time %q: %w", checkIn, err)
	}
	out, err := time.Parse(timeLayout, checkOut)
	if err != nil {
		return 0, fmt.Errorf("invalid check-out time %q: %w", checkOut, err)
	}
	hours := out.Sub(in).Hours()
	return math.Round(hours*100) / 100, nil
}

// CalculateDays returns the inclusive number of calendar days in [start, end].
func CalculateDays(start, end string) (int, error) {
	s, err := time.Parse(dateLayout, start)
	if err != nil {
		return 0, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	e, err := time.Parse(dateLayout, end)
	if err != nil {
		return 0, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	return int(e.Sub(s).Hours()/24) + 1, nil
}

// NormalizePage applies defaults and the upper bound on page size.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// Offset converts a 1-based page into a row offset.
func Offset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}

func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// GenerateEmployeeNumber returns EMP followed by eight upper-case hex
// characters. Uniqueness is enforced by the employees table.
func GenerateEmployeeNumber() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "EMP" + strings.ToUpper(id[:8])
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func NewPagination(page, limit int, total int64) Pagination {
	return Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: TotalPages(total, limit),
	}
}
