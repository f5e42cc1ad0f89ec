package i

import (
	dmn "github.com/beka-birhanu/mazebot-solver/domain"
)

// Authenticator registers solver accounts and signs them in.
type Authenticator interface {
	Register(username, password string) error
	SignIn(username, password string) (*dmn.User, string, error)
}
