// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/deepakbhimavarapu/SkillSol/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the query endpoints over the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}

// RegisterRoutes attaches all query routes to the fiber app.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/organizations", h.GetOrganizations)
	app.Get("/organizations/:id", h.GetOrganization)
	app.Get("/teams", h.GetTeams)
	app.Get("/teams/:id", h.GetTeam)
	app.Get("/roles", h.GetRoles)
	app.Get("/roles/:id", h.GetRole)
	app.Get("/individuals", h.GetIndividuals)
	app.Get("/individuals/:id", h.GetIndividual)
	app.Get("/skills", h.GetSkills)
	app.Get("/benchmarks", h.GetBenchmarks)
	app.Get("/skillgap", h.GetSkillGap)
}
