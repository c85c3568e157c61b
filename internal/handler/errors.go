package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/logvault/logvault/internal/apperr"
	"github.com/logvault/logvault/internal/response"
)

// writeError maps the apperr taxonomy onto HTTP statuses.
func writeError(c echo.Context, message string, err error) error {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return response.BadRequest(c, message, err.Error())
	case errors.Is(err, apperr.ErrUnauthorized):
		return response.Unauthorized(c, message, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		return response.NotFound(c, message, err.Error())
	default:
		return response.InternalError(c, message, err.Error())
	}
}
