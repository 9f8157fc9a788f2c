package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// GetSkills returns the full skill catalog.
func (h *Handler) GetSkills(c *fiber.Ctx) error {
	skills, err := h.uc.Skills(c.Context())
	if err != nil {
		h.log.Errorw("failed to list skills", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(skills)
}
