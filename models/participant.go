package models

// Competitor is a registered individual. It never changes after registration.
type Competitor struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	FullName    string `json:"fullName"`
}
