package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleEmployer Role = "EMPLOYER"
	RoleTalent   Role = "TALENT"
)

func (r Role) Valid() bool {
	return r == RoleEmployer || r == RoleTalent
}

type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      Role
	CreatedAt time.Time
}

// Identity is the caller resolved by the auth layer. Every use case takes one.
type Identity struct {
	ID   uuid.UUID
	Role Role
}

func (i Identity) IsEmployer() bool {
	return i.ID != uuid.Nil && i.Role == RoleEmployer
}

func (i Identity) IsTalent() bool {
	return i.ID != uuid.Nil && i.Role == RoleTalent
}
