package dataset

import (
	"context"

	"github.com/deepakbhimavarapu/SkillSol/internal/entities"
)

// Benchmarks returns the full industry-to-skill-ids mapping.
func (s *Store) Benchmarks(_ context.Context) (entities.BenchmarkSet, error) {
	return s.benchmarks, nil
}

// BenchmarkSkills returns the skill ids benchmarked for an industry.
// An unknown industry yields an empty sequence, not an error.
func (s *Store) BenchmarkSkills(_ context.Context, industry string) ([]string, error) {
	if ids, ok := s.benchmarks[industry]; ok {
		return ids, nil
	}
	return []string{}, nil
}
