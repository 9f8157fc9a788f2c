// Package domain contains application usecases orchestrating queries by team.
package domain

import (
	"context"
	"fmt"

	"github.com/deepakbhimavarapu/SkillSol/internal/entities"
)

// Teams returns teams, optionally narrowed to one organization.
func (u *Usecase) Teams(ctx context.Context, organizationID string) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListTeams(ctx, organizationID)
}

// Team returns one team by id.
func (u *Usecase) Team(ctx context.Context, id string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetTeam(ctx, id)
}
