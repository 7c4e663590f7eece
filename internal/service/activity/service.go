package activity

import (
	"context"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/activity"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/utils"
)

type service struct {
	repo activity.Repository
}

func NewActivityService(repo activity.Repository) activity.Service {
	return &service{repo: repo}
}

// Record implements activity.Service.
func (s *service) Record(ctx context.Context, log activity.Log) error {
	return s.repo.Create(ctx, log)
}

// List implements activity.Service.
func (s *service) List(ctx context.Context, filter activity.LogFilter) (activity.ListLogResponse, error) {
	filter.Page, filter.Limit = utils.NormalizePage(filter.Page, filter.Limit)

	logs, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return activity.ListLogResponse{}, err
	}

	responses := make([]activity.LogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, activity.NewLogResponse(l))
	}

	return activity.ListLogResponse{
		Logs:       responses,
		Pagination: utils.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}
