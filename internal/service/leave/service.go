package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/notification"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/utils"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/sqlite"
)

type LeaveServiceImpl struct {
	db                  *database.DB
	leaveRequestRepo    leave.LeaveRequestRepository
	userRepo            user.UserRepository
	notificationService notification.Service
	now                 func() time.Time
}

func NewLeaveService(
	db *database.DB,
	leaveRequestRepo leave.LeaveRequestRepository,
	userRepo user.UserRepository,
	notificationService notification.Service,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                  db,
		leaveRequestRepo:    leaveRequestRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
		now:                 time.Now,
	}
}

// CreateRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if principal.EmployeeID == nil {
		return leave.LeaveResponse{}, user.ErrNoEmployeeLink
	}
	employeeID := *principal.EmployeeID

	days, err := utils.CalculateDays(req.StartDate, req.EndDate)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	var created leave.Request
	err = sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		overlap, err := s.leaveRequestRepo.HasOverlap(txCtx, employeeID, req.StartDate, req.EndDate)
		if err != nil {
			return err
		}
		if overlap {
			return leave.ErrLeaveOverlap
		}

		created, err = s.leaveRequestRepo.Create(txCtx, leave.Request{
			EmployeeID: employeeID,
			LeaveType:  leave.Type(req.LeaveType),
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
			DaysCount:  days,
			Reason:     req.Reason,
			Status:     leave.StatusPending,
		})
		return err
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.NewLeaveResponse(created), nil
}

// ListRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListRequests(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveResponse, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	filter.EmployeeID, err = principal.ScopeEmployee(user.PermissionLeaveViewAll, filter.EmployeeID)
	if err != nil {
		return nil, err
	}

	requests, err := s.leaveRequestRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.NewLeaveResponse(r))
	}
	return responses, nil
}

// GetRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetRequest(ctx context.Context, id int64) (leave.LeaveResponse, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	r, err := s.leaveRequestRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !principal.CanView(user.PermissionLeaveViewAll, r.EmployeeID) {
		return leave.LeaveResponse{}, user.ErrForbidden
	}
	return leave.NewLeaveResponse(r), nil
}

// Decide implements leave.LeaveService.
func (s *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecisionRequest) (leave.LeaveResponse, error) {
	if req.Status != leave.StatusApproved && req.Status != leave.StatusRejected {
		return leave.LeaveResponse{}, fmt.Errorf("unsupported leave decision %q", req.Status)
	}

	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !principal.Can(user.PermissionLeaveApprove) {
		return leave.LeaveResponse{}, user.ErrForbidden
	}

	today := utils.FormatDate(s.now())
	var decided leave.Request
	err = sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		current, err := s.leaveRequestRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}
		if principal.IsEmployee(current.EmployeeID) {
			return leave.ErrSelfDecision
		}

		changed, err := s.leaveRequestRepo.UpdateStatus(txCtx, req.ID, req.Status, principal.EmployeeID, &today, req.Notes)
		if err != nil {
			return err
		}
		if !changed {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		decided, err = s.leaveRequestRepo.GetByID(txCtx, req.ID)
		return err
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	s.notifyOwner(ctx, decided)
	return leave.NewLeaveResponse(decided), nil
}

func (s *LeaveServiceImpl) notifyOwner(ctx context.Context, r leave.Request) {
	owner, err := s.userRepo.GetByEmployeeID(ctx, r.EmployeeID)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			slog.Warn("failed to resolve leave owner", "employee_id", r.EmployeeID, "error", err)
		}
		return
	}

	kind := notification.TypeSuccess
	if r.Status == leave.StatusRejected {
		kind = notification.TypeWarning
	}
	link := fmt.Sprintf("/leave/%d", r.ID)
	s.notificationService.Notify(ctx, notification.CreateNotificationRequest{
		UserID:  owner.ID,
		Title:   fmt.Sprintf("Leave request %s", r.Status),
		Message: fmt.Sprintf("Your %s leave from %s to %s was %s.", r.LeaveType, r.StartDate, r.EndDate, r.Status),
		Type:    kind,
		Link:    &link,
	})
}

// CancelRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CancelRequest(ctx context.Context, id int64) (leave.LeaveResponse, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	var cancelled leave.Request
	err = sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		r, err := s.leaveRequestRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if !principal.IsEmployee(r.EmployeeID) {
			return user.ErrForbidden
		}

		changed, err := s.leaveRequestRepo.UpdateStatus(txCtx, id, leave.StatusCancelled, nil, nil, nil)
		if err != nil {
			return err
		}
		if !changed {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		cancelled, err = s.leaveRequestRepo.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.NewLeaveResponse(cancelled), nil
}
