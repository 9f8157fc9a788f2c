package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// GetBenchmarks returns the skill ids benchmarked for the industry query
// param, or the full industry mapping when the param is absent. Unknown
// industries yield an empty list, not an error.
func (h *Handler) GetBenchmarks(c *fiber.Ctx) error {
	industry := c.Query("industry")
	if industry == "" {
		benchmarks, err := h.uc.Benchmarks(c.Context())
		if err != nil {
			h.log.Errorw("failed to get benchmarks", "error", err.Error())
			return writeError(c, err)
		}
		return c.Status(http.StatusOK).JSON(benchmarks)
	}

	ids, err := h.uc.BenchmarkSkills(c.Context(), industry)
	if err != nil {
		h.log.Errorw("failed to get benchmark skills", "industry", industry, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(ids)
}
