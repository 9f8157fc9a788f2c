package dataset

import (
	"context"

	"github.com/deepakbhimavarapu/SkillSol/internal/entities"
)

// ListRoles returns roles, narrowed to one team when teamID is non-empty.
func (s *Store) ListRoles(_ context.Context, teamID string) ([]entities.Role, error) {
	if teamID == "" {
		return s.roles, nil
	}

	filtered := make([]entities.Role, 0)
	for _, r := range s.roles {
		if r.TeamID == teamID {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// GetRole returns the first role with the given id.
func (s *Store) GetRole(_ context.Context, id string) (*entities.Role, error) {
	for i := range s.roles {
		if s.roles[i].ID == id {
			role := s.roles[i]
			return &role, nil
		}
	}
	return nil, entities.ErrRoleNotFound
}
