// Package entities contains core business entities.
package entities

// BenchmarkSet maps an industry name to the ordered skill ids that
// industry expects of an organization.
type BenchmarkSet map[string][]string
