package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/haergo/haergo-backend-go/internal/domain/auth"
	"github.com/haergo/haergo-backend-go/internal/domain/user"
	"github.com/haergo/haergo-backend-go/internal/handler/http/response"
)

// SeedHandler provisions a demo account set. Registration is idempotent
// per email, so repeated seeding is harmless.
type SeedHandler interface {
	Seed(w http.ResponseWriter, r *http.Request)
}

type seedHandlerImpl struct {
	authService auth.AuthService
}

func NewSeedHandler(authService auth.AuthService) SeedHandler {
	return &seedHandlerImpl{
		authService: authService,
	}
}

var seedAccounts = []auth.RegisterRequest{
	{Name: "Admin Utama", Email: "admin@haergo.com", Password: "admin12345", Role: "admin", Department: "Operations", Position: "System Administrator"},
	{Name: "Hana Rahma", Email: "hr@haergo.com", Password: "hr1234567", Role: "hr", Department: "Human Resources", Position: "HR Generalist"},
	{Name: "Maman Suherman", Email: "manager@haergo.com", Password: "manager123", Role: "manager", Department: "Engineering", Position: "Engineering Manager"},
	{Name: "Budi Santoso", Email: "budi@haergo.com", Password: "budi12345", Role: "employee", Department: "Engineering", Position: "Software Engineer"},
	{Name: "Sari Dewi", Email: "sari@haergo.com", Password: "sari12345", Role: "employee", Department: "Engineering", Position: "QA Engineer"},
}

// Seed implements SeedHandler.
func (h *seedHandlerImpl) Seed(w http.ResponseWriter, r *http.Request) {
	created := 0
	for _, account := range seedAccounts {
		if _, err := h.authService.Register(r.Context(), account); err != nil {
			if errors.Is(err, user.ErrUserEmailExists) {
				continue
			}
			response.HandleError(w, err)
			return
		}
		created++
	}

	response.SuccessWithMessage(w, fmt.Sprintf("Seeded %d accounts", created), map[string]int{
		"created": created,
		"total":   len(seedAccounts),
	})
}
