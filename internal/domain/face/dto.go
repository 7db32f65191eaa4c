package face

import (
	"fmt"

	"github.com/haergo/haergo-backend-go/internal/pkg/validator"
)

type RegisterFaceRequest struct {
	EmployeeID string    `json:"-"`
	Descriptor []float64 `json:"descriptor"`
}

func (r *RegisterFaceRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Descriptor) != DescriptorSize {
		errs = append(errs, validator.ValidationError{
			Field:   "descriptor",
			Message: fmt.Sprintf("descriptor must contain exactly %d values", DescriptorSize),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type FaceCheckResponse struct {
	Registered bool    `json:"registered"`
	UpdatedAt  *string `json:"updated_at,omitempty"`
}

type FaceDescriptorResponse struct {
	EmployeeID string    `json:"employee_id"`
	Descriptor []float64 `json:"descriptor"`
	UpdatedAt  string    `json:"updated_at"`
}
