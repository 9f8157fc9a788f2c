// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrOrganizationNotFound is returned when an organization does not exist.
	ErrOrganizationNotFound = errors.New("organization not found")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrRoleNotFound signals missing role.
	ErrRoleNotFound = errors.New("role not found")
	// ErrIndividualNotFound signals missing individual.
	ErrIndividualNotFound = errors.New("individual not found")
	// ErrSkillNotFound signals missing skill.
	ErrSkillNotFound = errors.New("skill not found")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
)
