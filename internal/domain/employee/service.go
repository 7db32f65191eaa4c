package employee

import "context"

type EmployeeService interface {
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, filter ListEmployeesFilter) ([]EmployeeResponse, error)
	Me(ctx context.Context) (EmployeeResponse, error)
}
