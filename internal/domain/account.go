package domain

import (
	"time"
)

// Role is stored as an open string; no allow-list is enforced at this
// layer. The constants cover the two roles the frontend sends today.
type Role string

const (
	RoleStudent Role = "student"
	RoleSenior  Role = "senior"
)

type Account struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
