package face

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/haergo/haergo-backend-go/internal/domain/face"
	"github.com/haergo/haergo-backend-go/internal/pkg/utils"
)

type FaceServiceImpl struct {
	face.FaceRepository
	now func() time.Time
}

func NewFaceService(faceRepository face.FaceRepository) face.FaceService {
	return &FaceServiceImpl{
		FaceRepository: faceRepository,
		now:            time.Now,
	}
}

// Register implements face.FaceService.
func (f *FaceServiceImpl) Register(ctx context.Context, req face.RegisterFaceRequest) (face.FaceCheckResponse, error) {
	if err := req.Validate(); err != nil {
		return face.FaceCheckResponse{}, err
	}

	caller, err := utils.RequireEmployee(ctx)
	if err != nil {
		return face.FaceCheckResponse{}, err
	}

	profile, err := f.FaceRepository.Upsert(ctx, face.FaceProfile{
		EmployeeID: caller.EmployeeID,
		Descriptor: req.Descriptor,
		UpdatedAt:  f.now(),
	})
	if err != nil {
		return face.FaceCheckResponse{}, fmt.Errorf("failed to store face profile: %w", err)
	}

	updatedAt := profile.UpdatedAt.Format("2006-01-02T15:04:05Z07:00")
	return face.FaceCheckResponse{Registered: true, UpdatedAt: &updatedAt}, nil
}

// Check implements face.FaceService.
func (f *FaceServiceImpl) Check(ctx context.Context) (face.FaceCheckResponse, error) {
	caller, err := utils.RequireEmployee(ctx)
	if err != nil {
		return face.FaceCheckResponse{}, err
	}

	profile, err := f.FaceRepository.GetByEmployee(ctx, caller.EmployeeID)
	if err != nil {
		if errors.Is(err, face.ErrFaceProfileNotFound) {
			return face.FaceCheckResponse{Registered: false}, nil
		}
		return face.FaceCheckResponse{}, fmt.Errorf("failed to get face profile: %w", err)
	}

	updatedAt := profile.UpdatedAt.Format("2006-01-02T15:04:05Z07:00")
	return face.FaceCheckResponse{Registered: true, UpdatedAt: &updatedAt}, nil
}

// Descriptor implements face.FaceService.
func (f *FaceServiceImpl) Descriptor(ctx context.Context) (face.FaceDescriptorResponse, error) {
	caller, err := utils.RequireEmployee(ctx)
	if err != nil {
		return face.FaceDescriptorResponse{}, err
	}

	profile, err := f.FaceRepository.GetByEmployee(ctx, caller.EmployeeID)
	if err != nil {
		return face.FaceDescriptorResponse{}, err
	}

	return face.FaceDescriptorResponse{
		EmployeeID: profile.EmployeeID,
		Descriptor: profile.Descriptor,
		UpdatedAt:  profile.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}, nil
}
