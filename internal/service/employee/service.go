package employee

import (
	"context"
	"fmt"

	"github.com/haergo/haergo-backend-go/internal/domain/employee"
	"github.com/haergo/haergo-backend-go/internal/pkg/utils"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
	}
}

// GetByID implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return emp.ToResponse(), nil
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.EmployeeResponse, error) {
	employees, err := e.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	out := make([]employee.EmployeeResponse, 0, len(employees))
	for i := range employees {
		out = append(out, employees[i].ToResponse())
	}
	return out, nil
}

// Me implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Me(ctx context.Context) (employee.EmployeeResponse, error) {
	caller, err := utils.RequireEmployee(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	emp, err := e.EmployeeRepository.GetByID(ctx, caller.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return emp.ToResponse(), nil
}
