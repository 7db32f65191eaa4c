package face

import "time"

// DescriptorSize is the fixed dimensionality of a face descriptor vector.
const DescriptorSize = 128

// FaceProfile stores one employee's opaque face descriptor. The vector is
// produced and consumed by an external matcher; this service only stores it.
type FaceProfile struct {
	EmployeeID string
	Descriptor []float64
	UpdatedAt  time.Time
}
