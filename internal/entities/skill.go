// Package entities contains core business entities.
package entities

// Skill is a capability referenced by role expectations and industry
// benchmarks.
type Skill struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}
