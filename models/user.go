package models

// UserRole is carried in the token claims.
type UserRole string

const (
	RoleOrganizer UserRole = "organizer"
)

// Organizer is the single account allowed to change the tournament.
type Organizer struct {
	Name string   `json:"name"`
	Role UserRole `json:"role"`
}
