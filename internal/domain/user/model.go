package user

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrDuplicate = errors.New("user already exists")
	ErrNotFound  = errors.New("user not found")
)

type User struct {
	ID         int64
	Email      string
	Name       string
	ExternalID string
	IsAdmin    bool
	CreatedAt  time.Time
}

// Identity is what the upstream auth proxy asserts about the caller.
type Identity struct {
	ExternalID string
	Email      string
	Name       string
}

func (i Identity) Normalize() Identity {
	return Identity{
		ExternalID: strings.TrimSpace(i.ExternalID),
		Email:      strings.ToLower(strings.TrimSpace(i.Email)),
		Name:       strings.TrimSpace(i.Name),
	}
}

// DisplayName falls back to the email local part when no name was asserted.
func (i Identity) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	local, _, _ := strings.Cut(i.Email, "@")
	return local
}
