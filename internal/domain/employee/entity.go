package employee

import (
	"time"

	"github.com/haergo/haergo-backend-go/internal/domain/user"
)

type Employee struct {
	ID         string
	UserID     string
	FullName   string
	Email      string
	Role       user.Role
	Department *string
	Position   *string
	AvatarURL  *string
	HireDate   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
