package dataset

import (
	"context"

	"github.com/deepakbhimavarapu/SkillSol/internal/entities"
)

// ListSkills returns the full skill catalog in load order.
func (s *Store) ListSkills(_ context.Context) ([]entities.Skill, error) {
	return s.skills, nil
}
