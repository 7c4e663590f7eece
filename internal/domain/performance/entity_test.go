package performance

import (
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBand(t *testing.T) {
	cases := []struct {
		rating float64
		want   string
	}{
		{5, BandExcellent},
		{4.5, BandExcellent},
		{4.49, BandVeryGood},
		{3.5, BandVeryGood},
		{2.5, BandGood},
		{1.5, BandAcceptable},
		{1.49, BandPoor},
		{0, BandPoor},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Band(c.rating), "rating %v", c.rating)
	}
}

func TestCreateReviewRequest_Validate(t *testing.T) {
	rating := 5.5
	req := CreateReviewRequest{OverallRating: &rating}
	var errs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &errs)
	m := errs.ToMap()
	for _, f := range []string{"employee_id", "review_period", "review_date", "overall_rating"} {
		assert.Contains(t, m, f)
	}

	rating = 4.2
	req = CreateReviewRequest{EmployeeID: 2, ReviewPeriod: "2024-H1", ReviewDate: "2024-06-30", OverallRating: &rating}
	assert.NoError(t, req.Validate())
}
