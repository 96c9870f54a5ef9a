package request

import (
	"emy-orders/internal/domain/user"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role,omitempty"`
}

// GetRole defaults to customer; the staff login form sends the role
// explicitly.
func (r LoginRequest) GetRole() (user.Role, error) {
	if r.Role == "" {
		return user.RoleCustomer, nil
	}
	return user.NewRole(r.Role)
}
