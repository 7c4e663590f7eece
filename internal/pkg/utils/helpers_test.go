package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateWorkHours(t *testing.T) {
	cases := []struct {
		in, out string
		want    float64
	}{
		{"08:00:00", "17:00:00", 9},
		{"08:15:00", "16:45:00", 8.5},
		{"09:00:00", "09:20:00", 0.33},
		{"10:00:00", "10:00:00", 0},
	}
	for _, c := range cases {
		got, err := CalculateWorkHours(c.in, c.out)
		require.NoError(t, err)
		assert.InDelta(t, c.want, got, 0.0001, "%s -> %s", c.in, c.out)
	}

	_, err := CalculateWorkHours("8am", "17:00:00")
	assert.Error(t, err)
}

func TestCalculateDays(t *testing.T) {
	days, err := CalculateDays("2024-07-01", "2024-07-01")
	require.NoError(t, err)
	assert.Equal(t, 1, days)

	days, err = CalculateDays("2024-02-27", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 4, days)

	_, err = CalculateDays("2024-07-01", "tomorrow")
	assert.Error(t, err)
}

func TestNormalizePage(t *testing.T) {
	page, limit := NormalizePage(0, 0)
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultLimit, limit)

	page, limit = NormalizePage(3, 500)
	assert.Equal(t, 3, page)
	assert.Equal(t, MaxLimit, limit)
}

func TestOffsetAndTotalPages(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 20, Offset(3, 10))
	assert.Equal(t, 3, TotalPages(21, 10))
	assert.Equal(t, 0, TotalPages(0, 10))
}

func TestGenerateEmployeeNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^EMP[0-9A-F]{8}$`)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		n := GenerateEmployeeNumber()
		assert.Regexp(t, pattern, n)
		seen[n] = true
	}
	assert.Greater(t, len(seen), 45)
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, time.July, 5, 13, 4, 5, 0, time.UTC)
	assert.Equal(t, "2024-07-05", FormatDate(ts))
	assert.Equal(t, "13:04:05", FormatTime(ts))
}
