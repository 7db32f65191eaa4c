package employee

// EmployeeResponse represents employee data in API responses
type EmployeeResponse struct {
	ID         string  `json:"id"`
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
	HireDate   string  `json:"hire_date"`
}

func (e *Employee) ToResponse() EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		FullName:   e.FullName,
		Email:      e.Email,
		Role:       string(e.Role),
		Department: e.Department,
		Position:   e.Position,
		AvatarURL:  e.AvatarURL,
		HireDate:   e.HireDate.Format("2006-01-02"),
	}
}

// ListEmployeesFilter narrows the directory listing.
type ListEmployeesFilter struct {
	Department *string
	Role       *string
}
