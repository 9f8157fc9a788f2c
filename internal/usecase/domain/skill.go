// Package domain contains application usecases orchestrating queries by skill.
package domain

import (
	"context"

	"github.com/deepakbhimavarapu/SkillSol/internal/entities"
)

// Skills returns the full skill catalog.
func (u *Usecase) Skills(ctx context.Context) ([]entities.Skill, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.ListSkills(ctx)
}
