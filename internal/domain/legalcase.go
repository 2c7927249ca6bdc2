package domain

import (
	"time"
)

// Case statuses
const (
	CaseStatusActive = "activo"
	CaseStatusClosed = "cerrado"
)

// DefaultCasePriority is applied when the client omits a priority
const DefaultCasePriority = "media"

// ImportantDate is a deadline or hearing attached to a case
type ImportantDate struct {
	Date        time.Time `bson:"date" json:"date"`
	Description string    `bson:"description" json:"description"`
}

// LegalCase is a client matter owned by an organization
type LegalCase struct {
	ID             string          `bson:"id" json:"id"`
	OrganizationID string          `bson:"organization_id" json:"organization_id"`
	CreatedBy      string          `bson:"created_by" json:"created_by"`
	Title          string          `bson:"title" json:"title"`
	ClientName     string          `bson:"client_name" json:"client_name"`
	CaseType       string          `bson:"case_type" json:"case_type"`
	Description    string          `bson:"description" json:"description"`
	Priority       string          `bson:"priority" json:"priority"`
	Status         string          `bson:"status" json:"status"`
	CreatedAt      time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `bson:"updated_at" json:"updated_at"`
	Tasks          []string        `bson:"tasks" json:"tasks"`
	Documents      []string        `bson:"documents" json:"documents"`
	ImportantDates []ImportantDate `bson:"important_dates" json:"important_dates"`
}
