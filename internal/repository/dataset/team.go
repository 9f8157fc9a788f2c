package dataset

import (
	"context"

	"github.com/deepakbhimavarapu/SkillSol/internal/entities"
)

// ListTeams returns teams, narrowed to one organization when
// organizationID is non-empty. An unmatched filter yields an empty list.
func (s *Store) ListTeams(_ context.Context, organizationID string) ([]entities.Team, error) {
	if organizationID == "" {
		return s.teams, nil
	}

	filtered := make([]entities.Team, 0)
	for _, t := range s.teams {
		if t.OrganizationID == organizationID {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// GetTeam returns the first team with the given id.
func (s *Store) GetTeam(_ context.Context, id string) (*entities.Team, error) {
	for i := range s.teams {
		if s.teams[i].ID == id {
			team := s.teams[i]
			return &team, nil
		}
	}
	return nil, entities.ErrTeamNotFound
}
