// Package domain contains application usecases orchestrating queries by role.
package domain

import (
	"context"
	"fmt"

	"github.com/deepakbhimavarapu/SkillSol/internal/entities"
)

// Roles returns roles, optionally narrowed to one team.
func (u *Usecase) Roles(ctx context.Context, teamID string) ([]entities.Role, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListRoles(ctx, teamID)
}

// Role returns one role by id.
func (u *Usecase) Role(ctx context.Context, id string) (*entities.Role, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: role id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetRole(ctx, id)
}
