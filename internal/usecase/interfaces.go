package usecase

import (
	"context"

	"github.com/deepakbhimavarapu/SkillSol/internal/entities"
)

// OrganizationUsecaseInterface abstracts organization queries for the delivery layer.
type OrganizationUsecaseInterface interface {
	Organizations(ctx context.Context) ([]entities.Organization, error)
	Organization(ctx context.Context, id string) (*entities.Organization, error)
}

// TeamUsecaseInterface abstracts team queries.
type TeamUsecaseInterface interface {
	Teams(ctx context.Context, organizationID string) ([]entities.Team, error)
	Team(ctx context.Context, id string) (*entities.Team, error)
}

// RoleUsecaseInterface abstracts role queries.
type RoleUsecaseInterface interface {
	Roles(ctx context.Context, teamID string) ([]entities.Role, error)
	Role(ctx context.Context, id string) (*entities.Role, error)
}

// IndividualUsecaseInterface abstracts individual queries.
type IndividualUsecaseInterface interface {
	Individuals(ctx context.Context, teamID, roleID string) ([]entities.Individual, error)
	Individual(ctx context.Context, id string) (*entities.Individual, error)
}

// SkillUsecaseInterface abstracts skill catalog queries.
type SkillUsecaseInterface interface {
	Skills(ctx context.Context) ([]entities.Skill, error)
}

// BenchmarkUsecaseInterface abstracts industry benchmark queries.
type BenchmarkUsecaseInterface interface {
	Benchmarks(ctx context.Context) (entities.BenchmarkSet, error)
	BenchmarkSkills(ctx context.Context, industry string) ([]string, error)
}

// SkillGapUsecaseInterface abstracts the derived skill-gap computation.
type SkillGapUsecaseInterface interface {
	SkillGap(ctx context.Context, organizationID string) ([]entities.Skill, error)
}
