package domain

import (
	"time"
)

// KeyDate is a deadline extracted from an analyzed document
type KeyDate struct {
	Date        string `bson:"date" json:"date"`
	Description string `bson:"description" json:"description"`
}

// Risk is a flagged risk in an analyzed document
type Risk struct {
	Level       string `bson:"level" json:"level"` // alto | medio | bajo
	Description string `bson:"description" json:"description"`
}

// Clause is a contract clause identified in an analyzed document
type Clause struct {
	Type    string `bson:"type" json:"type"` // estándar | atención | favorable
	Content string `bson:"content" json:"content"`
}

// AnalysisResult is the outcome of analyzing a document
type AnalysisResult struct {
	Filename      string    `bson:"filename" json:"filename"`
	Summary       string    `bson:"summary" json:"summary"`
	KeyDates      []KeyDate `bson:"key_dates" json:"key_dates"`
	Risks         []Risk    `bson:"risks" json:"risks"`
	Jurisprudence []string  `bson:"jurisprudence" json:"jurisprudence"`
	Clauses       []Clause  `bson:"clauses" json:"clauses"`
}

// DocumentAnalysis is a persisted analysis owned by an organization
type DocumentAnalysis struct {
	ID             string         `bson:"id" json:"id"`
	OrganizationID string         `bson:"organization_id" json:"organization_id"`
	CreatedBy      string         `bson:"created_by" json:"created_by"`
	Filename       string         `bson:"filename" json:"filename"`
	Analysis       AnalysisResult `bson:"analysis" json:"analysis"`
	CreatedAt      time.Time      `bson:"created_at" json:"created_at"`
}
