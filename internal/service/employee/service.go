package employee

import (
	"context"

	"github.com/bntng-project/esensi-backend/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.Repository
}

func NewEmployeeService(employeeRepo employee.Repository) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.Response, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Response{}, err
	}
	return employee.NewResponse(emp), nil
}

func (s *EmployeeServiceImpl) ListActive(ctx context.Context) ([]employee.Response, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]employee.Response, 0, len(employees))
	for _, emp := range employees {
		out = append(out, employee.NewResponse(emp))
	}
	return out, nil
}

// UpdateRates sets the pay rates used by daily payroll from the next
// checkout onward; already-completed days are not recomputed.
func (s *EmployeeServiceImpl) UpdateRates(ctx context.Context, id string, req employee.UpdateRatesRequest) (employee.Response, error) {
	if err := req.Validate(); err != nil {
		return employee.Response{}, err
	}

	emp, err := s.employeeRepo.UpdateRates(ctx, id, req.DailyRate, req.OvertimeHourlyRate, req.IsActive)
	if err != nil {
		return employee.Response{}, err
	}
	return employee.NewResponse(emp), nil
}
