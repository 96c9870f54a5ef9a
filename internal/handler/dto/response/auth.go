package response

import (
	"emy-orders/internal/usecase/commands"
)

type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"fullName"`
	Phone     string `json:"phone,omitempty"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	Role  string       `json:"role"`
	User  UserResponse `json:"user"`
}

func FromLoginResult(res *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token: res.Token,
		Role:  res.Role.String(),
		User: UserResponse{
			ID:        res.Profile.ID,
			FirstName: res.Profile.FirstName,
			LastName:  res.Profile.LastName,
			FullName:  res.Profile.FullName(),
			Phone:     res.Profile.Phone,
		},
	}
}
