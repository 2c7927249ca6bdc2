package domain

// LegalCategory is a practice area offered by the assistant
type LegalCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}
