// Package entities contains core business entities.
package entities

// Team belongs to an organization by foreign key.
type Team struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name,omitempty"`
}
