package dataset

import (
	"context"

	"github.com/deepakbhimavarapu/SkillSol/internal/entities"
)

// ListOrganizations returns every organization in load order.
func (s *Store) ListOrganizations(_ context.Context) ([]entities.Organization, error) {
	return s.organizations, nil
}

// GetOrganization returns the first organization with the given id.
func (s *Store) GetOrganization(_ context.Context, id string) (*entities.Organization, error) {
	for i := range s.organizations {
		if s.organizations[i].ID == id {
			org := s.organizations[i]
			return &org, nil
		}
	}
	return nil, entities.ErrOrganizationNotFound
}
