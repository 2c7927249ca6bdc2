package domain

import (
	"time"
)

// User roles
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User represents an authenticated member of an organization
type User struct {
	ID             string    `bson:"id" json:"id"`
	Email          string    `bson:"email" json:"email"`
	Name           string    `bson:"name" json:"name"`
	PasswordHash   string    `bson:"password" json:"-"` // bcrypt hash, never serialized
	OrganizationID string    `bson:"organization_id" json:"organization_id"`
	Role           string    `bson:"role" json:"role"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	Active         bool      `bson:"active" json:"active"`
}
