package face

import "errors"

var (
	ErrFaceProfileNotFound  = errors.New("face profile not found")
	ErrInvalidDescriptorLen = errors.New("face descriptor must contain exactly 128 values")
)
