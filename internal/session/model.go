package session

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCook     Role = "cook"
	RoleCustomer Role = "customer"
)

func RoleFor(isCook bool) Role {
	if isCook {
		return RoleCook
	}
	return RoleCustomer
}

func (r Role) Valid() bool {
	return r == RoleCook || r == RoleCustomer
}

// Metadata is captured at signup and stored alongside the auth user. The
// profiles row is created from it by a database trigger.
type Metadata struct {
	FullName string `json:"full_name"`
	IsCook   bool   `json:"is_cook"`
}

type User struct {
	ID        uuid.UUID
	Email     string
	Password  string
	Metadata  Metadata
	CreatedAt time.Time
}

// ProfileInfo is the subset of the profiles row needed to resolve a role.
type ProfileInfo struct {
	FullName  *string
	AvatarURL *string
	IsCook    bool
}

// Session is the resolved identity of the current request.
type Session struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	IsCook    bool      `json:"is_cook"`
	Role      Role      `json:"role"`
}

type SignupInput struct {
	FullName string
	Email    string
	Password string
	Role     Role
}
