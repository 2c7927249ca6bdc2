package domain

import (
	"time"
)

// Organization is the tenant isolation boundary. Every piece of business
// data in the system belongs to exactly one organization.
type Organization struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	Active    bool      `bson:"active" json:"active"`
}
