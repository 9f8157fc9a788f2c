// Package entities contains core business entities.
package entities

// Role belongs to a team and carries the set of skill ids the role
// is expected to cover. ExpectedSkills defaults to empty when the
// dataset omits it.
type Role struct {
	ID             string   `json:"id"`
	TeamID         string   `json:"team_id"`
	Title          string   `json:"title,omitempty"`
	ExpectedSkills []string `json:"expected_skills,omitempty"`
}
