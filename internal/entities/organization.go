// Package entities contains core business entities.
package entities

// Organization is a company in the dataset. Industry is optional and
// links the organization to an industry benchmark.
type Organization struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Industry string `json:"industry,omitempty"`
}
