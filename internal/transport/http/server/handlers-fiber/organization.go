package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// GetOrganizations returns every organization.
func (h *Handler) GetOrganizations(c *fiber.Ctx) error {
	orgs, err := h.uc.Organizations(c.Context())
	if err != nil {
		h.log.Errorw("failed to list organizations", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(orgs)
}

// GetOrganization returns one organization by id.
func (h *Handler) GetOrganization(c *fiber.Ctx) error {
	org, err := h.uc.Organization(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(org)
}
