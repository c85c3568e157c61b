package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/logvault/logvault/internal/model"
	"github.com/logvault/logvault/internal/response"
)

// AuthAPI is the login surface the handler needs.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*model.User, error)
}

// AuthHandler handles POST /api/login.
type AuthHandler struct {
	Auth AuthAPI
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks credentials and returns the user and role (POST /api/login).
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid JSON body", err.Error())
	}

	user, err := h.Auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return writeError(c, "invalid credentials", err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"user":    user.Username,
		"role":    user.Role,
	})
}
