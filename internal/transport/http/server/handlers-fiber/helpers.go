package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/deepakbhimavarapu/SkillSol/internal/entities"

	"github.com/gofiber/fiber/v2"
)

// ErrorCode labels error responses for machine consumption.
type ErrorCode string

const (
	// CodeNotFound marks missing single-entity lookups.
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodeInvalidArgument marks missing or invalid request parameters.
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// CodeInternal marks unexpected failures.
	CodeInternal ErrorCode = "INTERNAL"
)

// ErrorResponse is the JSON envelope for all error statuses.
type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := CodeInternal
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = CodeInvalidArgument
		msg = err.Error()
	case errors.Is(err, entities.ErrOrganizationNotFound),
		errors.Is(err, entities.ErrTeamNotFound),
		errors.Is(err, entities.ErrRoleNotFound),
		errors.Is(err, entities.ErrIndividualNotFound),
		errors.Is(err, entities.ErrSkillNotFound):
		status = http.StatusNotFound
		code = CodeNotFound
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code ErrorCode, msg string) ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}
