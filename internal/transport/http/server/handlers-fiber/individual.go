package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// GetIndividuals returns individuals, optionally filtered by team_id or
// role_id. team_id takes precedence when both are supplied.
func (h *Handler) GetIndividuals(c *fiber.Ctx) error {
	inds, err := h.uc.Individuals(c.Context(), c.Query("team_id"), c.Query("role_id"))
	if err != nil {
		h.log.Errorw("failed to list individuals", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(inds)
}

// GetIndividual returns one individual by id.
func (h *Handler) GetIndividual(c *fiber.Ctx) error {
	ind, err := h.uc.Individual(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(ind)
}
