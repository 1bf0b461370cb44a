package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleEditor Role = "Editor"
	RoleUser   Role = "User"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleUser:
		return true
	}
	return false
}

// CanAuthor reports whether the role is allowed to create, edit and delete posts.
func (r Role) CanAuthor() bool {
	switch r {
	case RoleAdmin, RoleEditor:
		return true
	}
	return false
}

// CanModify reports whether the actor may mutate a resource owned by ownerID.
// Admin bypasses ownership, everyone else must own the resource.
func CanModify(actorID uuid.UUID, actorRole Role, ownerID uuid.UUID) bool {
	if actorRole == RoleAdmin {
		return true
	}
	return actorID == ownerID
}

type User struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	Password  string    `db:"hashed_password"`
	Email     string    `db:"email"`
	Role      Role      `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
