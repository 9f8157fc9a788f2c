package usecase

import (
	"context"
	"time"

	"github.com/deepakbhimavarapu/SkillSol/internal/repository"
	"github.com/deepakbhimavarapu/SkillSol/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	OrganizationUsecaseInterface
	TeamUsecaseInterface
	RoleUsecaseInterface
	IndividualUsecaseInterface
	SkillUsecaseInterface
	BenchmarkUsecaseInterface
	SkillGapUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout)
}
