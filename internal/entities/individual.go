// Package entities contains core business entities.
package entities

// Individual is a person assigned to a team and a role.
type Individual struct {
	ID     string `json:"id"`
	TeamID string `json:"team_id"`
	RoleID string `json:"role_id"`
	Name   string `json:"name,omitempty"`
}
