package department

import (
	"context"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/department"
	"github.com/hrms-suite/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/sqlite"
	"github.com/shopspring/decimal"
)

type DepartmentServiceImpl struct {
	db             *database.DB
	departmentRepo department.DepartmentRepository
	employeeRepo   employee.EmployeeRepository
}

func NewDepartmentService(
	db *database.DB,
	departmentRepo department.DepartmentRepository,
	employeeRepo employee.EmployeeRepository,
) department.DepartmentService {
	return &DepartmentServiceImpl{
		db:             db,
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
	}
}

// ListDepartments implements department.DepartmentService.
func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, department.NewDepartmentResponse(d))
	}
	return responses, nil
}

// GetTree implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetTree(ctx context.Context) ([]department.TreeNode, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return department.BuildTree(departments), nil
}

// GetDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetDepartment(ctx context.Context, id int64) (department.DepartmentDetailResponse, error) {
	d, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentDetailResponse{}, err
	}

	roster, err := s.departmentRepo.ListRoster(ctx, id)
	if err != nil {
		return department.DepartmentDetailResponse{}, err
	}

	return department.DepartmentDetailResponse{
		DepartmentResponse: department.NewDepartmentResponse(d),
		Employees:          roster,
	}, nil
}

// checkReferences verifies that the parent department and manager exist.
// A zero id clears the link and is not looked up.
func (s *DepartmentServiceImpl) checkReferences(ctx context.Context, parentID, managerID *int64) error {
	if parentID != nil && *parentID != 0 {
		ok, err := s.departmentRepo.Exists(ctx, *parentID)
		if err != nil {
			return err
		}
		if !ok {
			return department.ErrParentDepartmentMissing
		}
	}
	if managerID != nil && *managerID != 0 {
		ok, err := s.employeeRepo.Exists(ctx, *managerID)
		if err != nil {
			return err
		}
		if !ok {
			return department.ErrManagerNotFound
		}
	}
	return nil
}

// CreateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.CreateDepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.CreateDepartmentResponse{}, err
	}

	newDepartment := department.Department{
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		ParentID:    nonZero(req.ParentID),
		ManagerID:   nonZero(req.ManagerID),
		Budget:      decimal.Zero,
	}
	if req.Budget != nil {
		newDepartment.Budget = *req.Budget
	}

	var created department.Department
	err := sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.checkReferences(txCtx, req.ParentID, req.ManagerID); err != nil {
			return err
		}
		var err error
		created, err = s.departmentRepo.Create(txCtx, newDepartment)
		return err
	})
	if err != nil {
		return department.CreateDepartmentResponse{}, err
	}

	return department.CreateDepartmentResponse{
		ID:   created.ID,
		Name: created.Name,
		Code: created.Code,
	}, nil
}

// UpdateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	var updated department.Department
	err := sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if _, err := s.departmentRepo.GetByID(txCtx, req.ID); err != nil {
			return err
		}
		if err := s.checkReferences(txCtx, req.ParentID, req.ManagerID); err != nil {
			return err
		}

		if req.ParentID != nil && *req.ParentID != 0 {
			all, err := s.departmentRepo.List(txCtx)
			if err != nil {
				return err
			}
			if department.WouldCycle(all, req.ID, *req.ParentID) {
				return department.ErrDepartmentCycle
			}
		}

		if err := s.departmentRepo.Update(txCtx, req); err != nil {
			return err
		}

		var err error
		updated, err = s.departmentRepo.GetByID(txCtx, req.ID)
		return err
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.NewDepartmentResponse(updated), nil
}

// DeleteDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) DeleteDepartment(ctx context.Context, id int64) error {
	return sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if _, err := s.departmentRepo.GetByID(txCtx, id); err != nil {
			return err
		}

		active, err := s.departmentRepo.CountActiveEmployees(txCtx, id)
		if err != nil {
			return err
		}
		if active > 0 {
			return department.ErrDepartmentHasEmployees
		}

		return s.departmentRepo.SoftDelete(txCtx, id)
	})
}

// GetStats implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetStats(ctx context.Context) ([]department.StatsResponse, error) {
	stats, err := s.departmentRepo.ListStats(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.StatsResponse, 0, len(stats))
	for _, st := range stats {
		responses = append(responses, department.StatsResponse{
			ID:            st.ID,
			Name:          st.Name,
			Code:          st.Code,
			EmployeeCount: st.EmployeeCount,
			Budget:        st.Budget,
			JobPositions:  st.JobPositions,
			AvgSalary:     st.AvgSalary,
		})
	}
	return responses, nil
}

func nonZero(id *int64) *int64 {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}
