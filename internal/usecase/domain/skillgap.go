// Package domain contains application usecases orchestrating skill gap analysis.
package domain

import (
	"context"
	"fmt"

	"github.com/deepakbhimavarapu/SkillSol/internal/entities"
)

// SkillGap computes the industry benchmark skills an organization's roles
// do not yet expect. The organization must exist and carry an industry.
// Gap skill ids without a record in the skill catalog are dropped.
func (u *Usecase) SkillGap(ctx context.Context, organizationID string) ([]entities.Skill, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if organizationID == "" {
		u.log.Errorw("failed to compute skill gap: missing org_id")
		return nil, fmt.Errorf("%w: org_id is required", entities.ErrInvalidArgument)
	}

	org, err := u.repo.GetOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if org.Industry == "" {
		u.log.Errorw("failed to compute skill gap: organization has no industry", "org_id", organizationID)
		return nil, fmt.Errorf("%w: organization %s has no industry", entities.ErrInvalidArgument, organizationID)
	}

	teams, err := u.repo.ListTeams(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	expected := make(map[string]struct{})
	for _, team := range teams {
		roles, err := u.repo.ListRoles(ctx, team.ID)
		if err != nil {
			return nil, err
		}
		for _, role := range roles {
			for _, skillID := range role.ExpectedSkills {
				expected[skillID] = struct{}{}
			}
		}
	}

	benchmark, err := u.repo.BenchmarkSkills(ctx, org.Industry)
	if err != nil {
		return nil, err
	}

	skills, err := u.repo.ListSkills(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entities.Skill, len(skills))
	for _, skill := range skills {
		if _, ok := byID[skill.ID]; !ok {
			byID[skill.ID] = skill
		}
	}

	gap := make([]entities.Skill, 0)
	seen := make(map[string]struct{}, len(benchmark))
	for _, skillID := range benchmark {
		if _, ok := expected[skillID]; ok {
			continue
		}
		if _, ok := seen[skillID]; ok {
			continue
		}
		seen[skillID] = struct{}{}
		if skill, ok := byID[skillID]; ok {
			gap = append(gap, skill)
		}
	}
	return gap, nil
}
