// Package domain contains application usecases orchestrating queries by individual.
package domain

import (
	"context"
	"fmt"

	"github.com/deepakbhimavarapu/SkillSol/internal/entities"
)

// Individuals returns individuals filtered by team or role.
// teamID wins when both filters are supplied; roleID is then ignored.
func (u *Usecase) Individuals(ctx context.Context, teamID, roleID string) ([]entities.Individual, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if teamID != "" {
		roleID = ""
	}
	return u.repo.ListIndividuals(ctx, teamID, roleID)
}

// Individual returns one individual by id.
func (u *Usecase) Individual(ctx context.Context, id string) (*entities.Individual, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: individual id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetIndividual(ctx, id)
}
