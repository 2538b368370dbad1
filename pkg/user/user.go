package user

import "strings"

type User struct {
	Key         string
	DisplayName string
	Avatar      string
	Id          string
	Email       string
	Phone       string
}

// FirstName is what greetings and the profile menu show.
func (u User) FirstName() string {
	first, _, _ := strings.Cut(u.DisplayName, " ")
	return first
}

// credential is one row of the fixed login table. Passwords are compared as
// plain text; this is demo data, not an authentication scheme.
type credential struct {
	Password string
	User     User
}
