package utils

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/haergo/haergo-backend-go/internal/domain/user"
)

// Caller is the authenticated identity extracted from the request token.
type Caller struct {
	UserID     string
	Email      string
	Role       user.Role
	EmployeeID string // empty when the account has no linked employee
}

// CallerFromContext extracts the caller from the verified JWT claims.
func CallerFromContext(ctx context.Context) (Caller, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Caller{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Caller{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return Caller{}, fmt.Errorf("role claim is missing or invalid")
	}

	c := Caller{
		UserID: userID,
		Role:   user.Role(roleStr),
	}
	if email, ok := claims["email"].(string); ok {
		c.Email = email
	}
	if employeeID, ok := claims["employee_id"].(string); ok {
		c.EmployeeID = employeeID
	}
	return c, nil
}

// RequireEmployee extracts the caller and fails when no employee record is
// linked to the account.
func RequireEmployee(ctx context.Context) (Caller, error) {
	c, err := CallerFromContext(ctx)
	if err != nil {
		return Caller{}, err
	}
	if c.EmployeeID == "" {
		return Caller{}, fmt.Errorf("employee_id claim is missing or invalid")
	}
	return c, nil
}
