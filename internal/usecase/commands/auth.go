package commands

import (
	"context"

	"emy-orders/internal/domain/user"
	"emy-orders/internal/pkg/errs"
	"emy-orders/internal/pkg/jwt"
)

var (
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	Profile user.Profile
	Role    user.Role
	Token   string
}

// AuthCommands delegates the credential check to the external directory
// and issues a session token for the returned profile. No credential
// policy lives here.
type AuthCommands interface {
	Login(ctx context.Context, username, password string, role user.Role) (*LoginResult, error)
}

type authCommandsImpl struct {
	directory  DirectoryGateway
	jwtService *jwt.Service
}

func NewAuthCommands(directory DirectoryGateway, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{directory: directory, jwtService: jwtService}
}

func (a *authCommandsImpl) Login(ctx context.Context, username, password string, role user.Role) (*LoginResult, error) {
	var (
		profile *user.Profile
		err     error
	)
	switch role {
	case user.RoleStaff:
		profile, err = a.directory.CheckStaffLogin(ctx, username, password)
	default:
		profile, err = a.directory.CheckCustomerLogin(ctx, username, password)
	}
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.jwtService.GenerateToken(profile.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{Profile: *profile, Role: role, Token: token}, nil
}
