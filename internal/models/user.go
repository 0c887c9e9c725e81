package models

import (
	"fmt"
	"time"
)

type User struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Role            UserRole   `json:"role"`
	Status          UserStatus `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	LastLoginAt     time.Time  `json:"lastLoginAt"`
	WorkspacesCount int        `json:"workspacesCount"`
	Avatar          string     `json:"avatar"`
}

func (u User) EntityID() string { return u.ID }

func (u User) Clone() User { return u }

// Validate checks enum closure and the login-after-creation rule.
func (u User) Validate() error {
	if !u.Role.Valid() {
		return fmt.Errorf("user %s: role %q: %w", u.ID, u.Role, ErrInvalidEnum)
	}
	if !u.Status.Valid() {
		return fmt.Errorf("user %s: status %q: %w", u.ID, u.Status, ErrInvalidEnum)
	}
	if u.LastLoginAt.Before(u.CreatedAt) {
		return fmt.Errorf("user %s: lastLoginAt before createdAt: %w", u.ID, ErrInvariant)
	}
	return nil
}

type UserPatch struct {
	ID              string
	Name            *string
	Email           *string
	Role            *UserRole
	Status          *UserStatus
	LastLoginAt     *time.Time
	WorkspacesCount *int
	Avatar          *string
}

func (p UserPatch) PatchID() string { return p.ID }

func (p UserPatch) Apply(u *User) {
	set(p.Name, &u.Name)
	set(p.Email, &u.Email)
	set(p.Role, &u.Role)
	set(p.Status, &u.Status)
	set(p.LastLoginAt, &u.LastLoginAt)
	set(p.WorkspacesCount, &u.WorkspacesCount)
	set(p.Avatar, &u.Avatar)
}
