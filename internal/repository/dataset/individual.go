package dataset

import (
	"context"

	"github.com/deepakbhimavarapu/SkillSol/internal/entities"
)

// ListIndividuals returns individuals filtered by team or by role.
// A non-empty teamID takes precedence and roleID is ignored.
func (s *Store) ListIndividuals(_ context.Context, teamID, roleID string) ([]entities.Individual, error) {
	switch {
	case teamID != "":
		filtered := make([]entities.Individual, 0)
		for _, ind := range s.individuals {
			if ind.TeamID == teamID {
				filtered = append(filtered, ind)
			}
		}
		return filtered, nil
	case roleID != "":
		filtered := make([]entities.Individual, 0)
		for _, ind := range s.individuals {
			if ind.RoleID == roleID {
				filtered = append(filtered, ind)
			}
		}
		return filtered, nil
	default:
		return s.individuals, nil
	}
}

// GetIndividual returns the first individual with the given id.
func (s *Store) GetIndividual(_ context.Context, id string) (*entities.Individual, error) {
	for i := range s.individuals {
		if s.individuals[i].ID == id {
			ind := s.individuals[i]
			return &ind, nil
		}
	}
	return nil, entities.ErrIndividualNotFound
}
