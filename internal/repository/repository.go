// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"github.com/deepakbhimavarapu/SkillSol/config"
	"github.com/deepakbhimavarapu/SkillSol/internal/repository/dataset"

	"go.uber.org/zap"
)

// Repository aggregates all storage interfaces.
type Repository interface {
	LifecycleInterface
	OrganizationInterface
	TeamInterface
	RoleInterface
	IndividualInterface
	SkillInterface
	BenchmarkInterface
}

// New constructs a repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "dataset":
		return dataset.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
