package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role separates customers (who own carts and receive notifications)
// from staff (who approve orders and read reports). Verification of
// credentials happens in the external directory; only the resulting
// role is modeled here.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleStaff:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

// Profile is the identity record the external directory returns after a
// successful credential check. IDs are assigned by the directory.
type Profile struct {
	ID        string
	FirstName string
	LastName  string
	Phone     string
}

func (p Profile) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
