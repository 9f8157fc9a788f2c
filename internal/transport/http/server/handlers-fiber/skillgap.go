package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// GetSkillGap returns the benchmark skills the organization's roles do
// not yet expect. org_id is required.
func (h *Handler) GetSkillGap(c *fiber.Ctx) error {
	gap, err := h.uc.SkillGap(c.Context(), c.Query("org_id"))
	if err != nil {
		h.log.Infow("skill gap request failed", "org_id", c.Query("org_id"), "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(gap)
}
