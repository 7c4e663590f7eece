package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/user"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/utils"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

func selfEmployee(ctx context.Context) (int64, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return 0, err
	}
	if principal.EmployeeID == nil {
		return 0, user.ErrNoEmployeeLink
	}
	return *principal.EmployeeID, nil
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.CheckInResponse, error) {
	employeeID, err := selfEmployee(ctx)
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	now := s.now()
	checkIn := utils.FormatTime(now)
	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: employeeID,
		Date:       utils.FormatDate(now),
		CheckIn:    &checkIn,
		Status:     attendance.StatusPresent,
		Notes:      req.Notes,
	})
	if err != nil {
		return attendance.CheckInResponse{}, err
	}

	return attendance.CheckInResponse{
		ID:      created.ID,
		Date:    created.Date,
		CheckIn: checkIn,
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.CheckOutResponse, error) {
	employeeID, err := selfEmployee(ctx)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}

	now := s.now()
	open, err := s.attendanceRepo.GetOpenByEmployeeAndDate(ctx, employeeID, utils.FormatDate(now))
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}
	if open.CheckIn == nil {
		return attendance.CheckOutResponse{}, attendance.ErrNoOpenCheckIn
	}

	checkOut := utils.FormatTime(now)
	hours, err := utils.CalculateWorkHours(*open.CheckIn, checkOut)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to calculate work hours: %w", err)
	}

	closed, err := s.attendanceRepo.CloseCheckIn(ctx, open.ID, checkOut, hours)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}
	if !closed {
		return attendance.CheckOutResponse{}, attendance.ErrNoOpenCheckIn
	}

	return attendance.CheckOutResponse{
		CheckOut:  checkOut,
		WorkHours: hours,
	}, nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	filter.EmployeeID, err = principal.ScopeEmployee(user.PermissionAttendanceViewAll, filter.EmployeeID)
	if err != nil {
		return nil, err
	}

	if filter.Month != nil && filter.Year != nil && filter.StartDate == nil && filter.EndDate == nil {
		from, to := monthRange(*filter.Month, *filter.Year)
		filter.StartDate, filter.EndDate = &from, &to
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, attendance.NewAttendanceResponse(a))
	}
	return responses, nil
}

// UpdateAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var workHours *float64
	if req.CheckIn != nil && req.CheckOut != nil {
		hours, err := utils.CalculateWorkHours(*req.CheckIn, *req.CheckOut)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to calculate work hours: %w", err)
		}
		workHours = &hours
	}

	if err := s.attendanceRepo.Update(ctx, req, workHours); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.NewAttendanceResponse(updated), nil
}

// GetStats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetStats(ctx context.Context, filter attendance.StatsFilter) (attendance.StatsResponse, error) {
	principal, err := user.PrincipalFromContext(ctx)
	if err != nil {
		return attendance.StatsResponse{}, err
	}

	now := s.now()
	if filter.Month == 0 {
		filter.Month = int(now.Month())
	}
	if filter.Year == 0 {
		filter.Year = now.Year()
	}
	if filter.Month < 1 || filter.Month > 12 {
		return attendance.StatsResponse{}, attendance.ErrInvalidPeriod
	}

	requested := filter.EmployeeID
	if requested == nil {
		requested = principal.EmployeeID
	}
	employeeID, err := principal.ScopeEmployee(user.PermissionAttendanceViewAll, requested)
	if err != nil {
		return attendance.StatsResponse{}, err
	}
	if employeeID == nil {
		return attendance.StatsResponse{}, user.ErrNoEmployeeLink
	}

	from, to := monthRange(filter.Month, filter.Year)
	stats, err := s.attendanceRepo.GetStats(ctx, *employeeID, from, to)
	if err != nil {
		return attendance.StatsResponse{}, err
	}

	return attendance.StatsResponse{
		EmployeeID:  *employeeID,
		Month:       filter.Month,
		Year:        filter.Year,
		TotalDays:   stats.TotalDays,
		PresentDays: stats.PresentDays,
		AbsentDays:  stats.AbsentDays,
		LateDays:    stats.LateDays,
		TotalHours:  stats.TotalHours,
		AvgHours:    stats.AvgHours,
	}, nil
}

// monthRange returns the first and last calendar day of a month.
func monthRange(month, year int) (string, string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return utils.FormatDate(first), utils.FormatDate(first.AddDate(0, 1, -1))
}
