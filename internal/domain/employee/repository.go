package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	List(ctx context.Context, filter ListEmployeesFilter) ([]Employee, error)
	Create(ctx context.Context, e Employee) (Employee, error)
	ListIDsByDepartment(ctx context.Context, department string) ([]string, error)
}
