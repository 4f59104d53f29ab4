package http

import (
	"net/http"

	"wiggy/internal/core/application/usecases/commands"
	"wiggy/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type registrationRequest struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Phone    string         `json:"phone"`
	Address  addressPayload `json:"address"`
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterUser handles POST /api/auth/register.
func (s *Server) RegisterUser(c echo.Context) error {
	var req registrationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
	}

	cmd, err := commands.NewRegisterUserCommand(req.Name, req.Email, req.Password, req.Phone, req.Address.toDomain())
	if err != nil {
		return s.fail(c, err, "Registration failed")
	}

	res, err := s.handlers.RegisterUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, "Registration failed")
	}

	return c.JSON(http.StatusCreated, sessionResponse{
		Message: "User registered successfully",
		Token:   res.Token,
		User:    userFromDomain(res.User),
	})
}

// Login handles POST /api/auth/login.
func (s *Server) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
	}

	cmd, err := commands.NewAuthenticateUserCommand(req.Email, req.Password)
	if err != nil {
		return s.fail(c, err, "Login failed")
	}

	res, err := s.handlers.AuthenticateUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, "Login failed")
	}

	return c.JSON(http.StatusOK, sessionResponse{
		Message: "Login successful",
		Token:   res.Token,
		User:    userFromDomain(res.User),
	})
}

// Me handles GET /api/auth/me.
func (s *Server) Me(c echo.Context) error {
	query, err := queries.NewGetCurrentUserQuery(currentUserID(c))
	if err != nil {
		return s.fail(c, err, "Failed to get user profile")
	}

	u, err := s.handlers.GetCurrentUser.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, "Failed to get user profile")
	}

	return c.JSON(http.StatusOK, userEnvelope{
		Message: "User profile retrieved",
		User:    userFromDomain(u),
	})
}
