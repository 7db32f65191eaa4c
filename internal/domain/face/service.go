package face

import "context"

type FaceService interface {
	// Register upserts the authenticated employee's face descriptor.
	Register(ctx context.Context, req RegisterFaceRequest) (FaceCheckResponse, error)

	// Check reports whether the authenticated employee has a descriptor.
	Check(ctx context.Context) (FaceCheckResponse, error)

	// Descriptor fetches the authenticated employee's descriptor.
	Descriptor(ctx context.Context) (FaceDescriptorResponse, error)
}
