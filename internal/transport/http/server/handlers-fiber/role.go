package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// GetRoles returns roles, optionally filtered by team_id.
func (h *Handler) GetRoles(c *fiber.Ctx) error {
	roles, err := h.uc.Roles(c.Context(), c.Query("team_id"))
	if err != nil {
		h.log.Errorw("failed to list roles", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(roles)
}

// GetRole returns one role by id.
func (h *Handler) GetRole(c *fiber.Ctx) error {
	role, err := h.uc.Role(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(role)
}
