// Package domain contains application usecases orchestrating queries by organization.
package domain

import (
	"context"
	"fmt"

	"github.com/deepakbhimavarapu/SkillSol/internal/entities"
)

// Organizations returns every organization.
func (u *Usecase) Organizations(ctx context.Context) ([]entities.Organization, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListOrganizations(ctx)
}

// Organization returns one organization by id.
func (u *Usecase) Organization(ctx context.Context, id string) (*entities.Organization, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: organization id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetOrganization(ctx, id)
}
