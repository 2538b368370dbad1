package user

import (
	"context"
	"errors"
	"strings"
)

const FallbackKey = "admin"

var ErrUserNotFound = errors.New("user not found")

type Repo interface {
	GetUser(ctx context.Context, key string) (User, error)
	CheckPassword(ctx context.Context, key string, password string) (User, error)
}

// FixedRepo serves the hardcoded demo accounts.
type FixedRepo struct {
	data map[string]credential
}

func NewFixedRepo() *FixedRepo {
	return &FixedRepo{data: map[string]credential{
		"admin": {Password: "July122025", User: User{
			Key: "admin", DisplayName: "Chris Augustine", Avatar: "/chris.png", Id: "1",
			Email: "chris@futurestate.cloud", Phone: "602-555-5555",
		}},
		"joe": {Password: "July162025", User: User{
			Key: "joe", DisplayName: "Joe Harting", Avatar: "/joe.png", Id: "2",
			Email: "joe@futurestate.cloud", Phone: "928-555-5555",
		}},
		"erika": {Password: "July222025", User: User{
			Key: "erika", DisplayName: "Erika Harting", Avatar: "/erika.png", Id: "3",
			Email: "erika@futurestate.cloud", Phone: "928-554-5555",
		}},
		"drennen": {Password: "July232025", User: User{
			Key: "drennen", DisplayName: "Drennen Brown", Avatar: "/drennen.png", Id: "4",
			Email: "drennen@futurestate.cloud", Phone: "928-556-5555",
		}},
	}}
}

func (f *FixedRepo) GetUser(_ context.Context, key string) (User, error) {
	c, ok := f.data[strings.ToLower(key)]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return c.User, nil
}

func (f *FixedRepo) CheckPassword(_ context.Context, key string, password string) (User, error) {
	c, ok := f.data[strings.ToLower(key)]
	if !ok || c.Password != password {
		return User{}, ErrUserNotFound
	}
	return c.User, nil
}
