package face

import "context"

type FaceRepository interface {
	// Upsert stores or replaces the employee's descriptor.
	Upsert(ctx context.Context, p FaceProfile) (FaceProfile, error)

	GetByEmployee(ctx context.Context, employeeID string) (FaceProfile, error)
}
