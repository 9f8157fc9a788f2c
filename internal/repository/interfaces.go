// Package repository contains repository interfaces for storage backends.
package repository

import (
	"context"

	"github.com/deepakbhimavarapu/SkillSol/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// OrganizationInterface exposes organization lookups.
type OrganizationInterface interface {
	ListOrganizations(ctx context.Context) ([]entities.Organization, error)
	GetOrganization(ctx context.Context, id string) (*entities.Organization, error)
}

// TeamInterface exposes team lookups. An empty organizationID lists all teams.
type TeamInterface interface {
	ListTeams(ctx context.Context, organizationID string) ([]entities.Team, error)
	GetTeam(ctx context.Context, id string) (*entities.Team, error)
}

// RoleInterface exposes role lookups. An empty teamID lists all roles.
type RoleInterface interface {
	ListRoles(ctx context.Context, teamID string) ([]entities.Role, error)
	GetRole(ctx context.Context, id string) (*entities.Role, error)
}

// IndividualInterface exposes individual lookups. teamID takes precedence
// over roleID when both are non-empty; both empty lists everyone.
type IndividualInterface interface {
	ListIndividuals(ctx context.Context, teamID, roleID string) ([]entities.Individual, error)
	GetIndividual(ctx context.Context, id string) (*entities.Individual, error)
}

// SkillInterface exposes the skill catalog.
type SkillInterface interface {
	ListSkills(ctx context.Context) ([]entities.Skill, error)
}

// BenchmarkInterface exposes industry benchmark lookups. BenchmarkSkills
// returns an empty sequence for an unknown industry, never an error.
type BenchmarkInterface interface {
	Benchmarks(ctx context.Context) (entities.BenchmarkSet, error)
	BenchmarkSkills(ctx context.Context, industry string) ([]string, error)
}
