package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// GetTeams returns teams, optionally filtered by organization_id.
func (h *Handler) GetTeams(c *fiber.Ctx) error {
	teams, err := h.uc.Teams(c.Context(), c.Query("organization_id"))
	if err != nil {
		h.log.Errorw("failed to list teams", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(teams)
}

// GetTeam returns one team by id.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	team, err := h.uc.Team(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(team)
}
