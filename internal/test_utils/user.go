package test_utils

import (
	"context"

	"github.com/balanceu/balanceu/pkg/user"
)

// TestUserService always reports User as the current identity.
type TestUserService struct {
	User user.User
}

func (s TestUserService) Authenticate(_ context.Context, _ string, _ string) (user.User, error) {
	return s.User, nil
}

func (s TestUserService) CurrentUser(_ context.Context) user.User {
	return s.User
}

func (s TestUserService) Logout(_ context.Context) error {
	return nil
}
