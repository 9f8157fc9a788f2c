// Package domain contains application usecases orchestrating queries by benchmark.
package domain

import (
	"context"

	"github.com/deepakbhimavarapu/SkillSol/internal/entities"
)

// Benchmarks returns the full industry-to-skill-ids mapping.
func (u *Usecase) Benchmarks(ctx context.Context) (entities.BenchmarkSet, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.Benchmarks(ctx)
}

// BenchmarkSkills returns benchmarked skill ids for one industry.
// Unknown industries yield an empty sequence.
func (u *Usecase) BenchmarkSkills(ctx context.Context, industry string) ([]string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.BenchmarkSkills(ctx, industry)
}
