package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/haergo/haergo-backend-go/internal/domain/face"
	"github.com/haergo/haergo-backend-go/internal/pkg/database"
)

type faceRepositoryImpl struct {
	db *database.DB
}

func NewFaceRepository(db *database.DB) face.FaceRepository {
	return &faceRepositoryImpl{db: db}
}

// Upsert implements face.FaceRepository.
func (r *faceRepositoryImpl) Upsert(ctx context.Context, p face.FaceProfile) (face.FaceProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO face_profiles (employee_id, descriptor, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id) DO UPDATE
		SET descriptor = EXCLUDED.descriptor, updated_at = EXCLUDED.updated_at
		RETURNING employee_id, descriptor, updated_at
	`

	var stored face.FaceProfile
	err := q.QueryRow(ctx, query, p.EmployeeID, p.Descriptor, p.UpdatedAt).Scan(
		&stored.EmployeeID, &stored.Descriptor, &stored.UpdatedAt,
	)
	if err != nil {
		return face.FaceProfile{}, fmt.Errorf("upsert face profile: %w", err)
	}
	return stored, nil
}

// GetByEmployee implements face.FaceRepository.
func (r *faceRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) (face.FaceProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT employee_id, descriptor, updated_at FROM face_profiles WHERE employee_id = $1`

	var p face.FaceProfile
	err := q.QueryRow(ctx, query, employeeID).Scan(&p.EmployeeID, &p.Descriptor, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return face.FaceProfile{}, face.ErrFaceProfileNotFound
		}
		return face.FaceProfile{}, fmt.Errorf("get face profile: %w", err)
	}
	return p, nil
}
