package performance

import (
	"context"
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/performance"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

const topPerformersLimit = 10

var bandOrder = []string{
	performance.BandExcellent,
	performance.BandVeryGood,
	performance.BandGood,
	performance.BandAcceptable,
	performance.BandPoor,
}

type PerformanceServiceImpl struct {
	reviewRepo   performance.ReviewRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewPerformanceService(reviewRepo performance.ReviewRepository, employeeRepo employee.EmployeeRepository) performance.PerformanceService {
	return &PerformanceServiceImpl{
		reviewRepo:   reviewRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// ListReviews implements performance.PerformanceService.
func (s *PerformanceServiceImpl) ListReviews(ctx context.Context, filter performance.ReviewFilter) ([]performance.ReviewResponse, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	filter.EmployeeID, err = principal.ScopeEmployee(user.PermissionPerformanceViewAll, filter.EmployeeID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]performance.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		responses = append(responses, performance.NewReviewResponse(r))
	}
	return responses, nil
}

func isReviewer(p user.Principal, r performance.Review) bool {
	return r.ReviewerID != nil && p.IsEmployee(*r.ReviewerID)
}

// GetReview implements performance.PerformanceService.
func (s *PerformanceServiceImpl) GetReview(ctx context.Context, id int64) (performance.ReviewResponse, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return performance.ReviewResponse{}, err
	}
	if !principal.CanView(user.PermissionPerformanceViewAll, review.EmployeeID) && !isReviewer(principal, review) {
		return performance.ReviewResponse{}, user.ErrForbidden
	}
	return performance.NewReviewResponse(review), nil
}

// CreateReview implements performance.PerformanceService.
func (s *PerformanceServiceImpl) CreateReview(ctx context.Context, req performance.CreateReviewRequest) (performance.CreateReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.CreateReviewResponse{}, err
	}

	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return performance.CreateReviewResponse{}, err
	}
	if principal.EmployeeID == nil {
		return performance.CreateReviewResponse{}, user.ErrNoEmployeeLink
	}

	exists, err := s.employeeRepo.Exists(ctx, req.EmployeeID)
	if err != nil {
		return performance.CreateReviewResponse{}, err
	}
	if !exists {
		return performance.CreateReviewResponse{}, performance.ErrEmployeeNotFound
	}

	reviewerID := *principal.EmployeeID
	created, err := s.reviewRepo.Create(ctx, performance.Review{
		EmployeeID:          req.EmployeeID,
		ReviewerID:          &reviewerID,
		ReviewPeriod:        req.ReviewPeriod,
		ReviewDate:          req.ReviewDate,
		OverallRating:       req.OverallRating,
		Strengths:           req.Strengths,
		AreasForImprovement: req.AreasForImprovement,
		Goals:               req.Goals,
		Comments:            req.Comments,
		Status:              performance.StatusDraft,
	})
	if err != nil {
		return performance.CreateReviewResponse{}, err
	}
	return performance.CreateReviewResponse{ID: created.ID}, nil
}

// UpdateReview implements performance.PerformanceService.
func (s *PerformanceServiceImpl) UpdateReview(ctx context.Context, req performance.UpdateReviewRequest) (performance.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.ReviewResponse{}, err
	}

	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	review, err := s.reviewRepo.GetByID(ctx, req.ID)
	if err != nil {
		return performance.ReviewResponse{}, err
	}
	if !principal.Can(user.PermissionPerformanceEditAll) && !isReviewer(principal, review) {
		return performance.ReviewResponse{}, user.ErrForbidden
	}

	if err := s.reviewRepo.Update(ctx, req); err != nil {
		return performance.ReviewResponse{}, err
	}

	updated, err := s.reviewRepo.GetByID(ctx, req.ID)
	if err != nil {
		return performance.ReviewResponse{}, err
	}
	return performance.NewReviewResponse(updated), nil
}

// DeleteReview implements performance.PerformanceService.
func (s *PerformanceServiceImpl) DeleteReview(ctx context.Context, id int64) error {
	return s.reviewRepo.Delete(ctx, id)
}

// GetStats implements performance.PerformanceService.
func (s *PerformanceServiceImpl) GetStats(ctx context.Context, year int) (performance.StatsResponse, error) {
	if year == 0 {
		year = s.now().Year()
	}

	var (
		overview performance.Overview
		ratings  []float64
		top      []performance.TopPerformer
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		overview, err = s.reviewRepo.GetOverview(gCtx, year)
		return err
	})
	g.Go(func() error {
		var err error
		ratings, err = s.reviewRepo.ListRatings(gCtx, year)
		return err
	})
	g.Go(func() error {
		var err error
		top, err = s.reviewRepo.ListTopPerformers(gCtx, year, topPerformersLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return performance.StatsResponse{}, err
	}

	distribution := make([]performance.BandCountResponse, 0, len(bandOrder))
	for _, bc := range distribute(ratings) {
		distribution = append(distribution, performance.BandCountResponse{RatingCategory: bc.Band, Count: bc.Count})
	}

	topPerformers := make([]performance.TopPerformerResponse, 0, len(top))
	for _, tp := range top {
		topPerformers = append(topPerformers, performance.TopPerformerResponse{
			EmployeeID:    tp.EmployeeID,
			EmployeeName:  tp.EmployeeName,
			Department:    tp.Department,
			OverallRating: tp.OverallRating,
			ReviewPeriod:  tp.ReviewPeriod,
		})
	}

	return performance.StatsResponse{
		Year: year,
		Overview: performance.OverviewResponse{
			AverageRating: overview.AverageRating,
			TotalReviews:  overview.TotalReviews,
			ApprovedCount: overview.Approved,
			DraftCount:    overview.Draft,
		},
		Distribution:  distribution,
		TopPerformers: topPerformers,
	}, nil
}

// distribute counts ratings per band, best band first. Empty bands are kept.
func distribute(ratings []float64) []performance.BandCount {
	counts := make(map[string]int64, len(bandOrder))
	for _, r := range ratings {
		counts[performance.Band(r)]++
	}

	result := make([]performance.BandCount, 0, len(bandOrder))
	for _, band := range bandOrder {
		result = append(result, performance.BandCount{Band: band, Count: counts[band]})
	}
	return result
}
