package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yohanpasi/storefront/api/http/presenter"
	"github.com/yohanpasi/storefront/pkg/auth"
	"github.com/yohanpasi/storefront/pkg/security/jwt"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type registerRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// publicUser is the client-safe view of an account; never the hash.
type publicUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	UserName string `json:"userName"`
	Role     string `json:"role"`
}

// Register handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	_, err := h.useCase.Register(c.Context(), req.UserName, req.Email, req.Password)
	if err != nil {
		var vErr auth.ValidationError
		switch {
		case errors.As(err, &vErr):
			return presenter.Error(c, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, auth.ErrEmailTaken):
			return presenter.Error(c, http.StatusBadRequest, "Email is already registered.")
		case errors.Is(err, auth.ErrUserNameTaken):
			return presenter.Error(c, http.StatusBadRequest, "User name is already taken.")
		default:
			log.Printf("register: %v", err)
			return presenter.Error(c, http.StatusInternalServerError, "An unexpected error occurred.")
		}
	}

	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"success": true,
		"message": "Registration successful.",
	})
}

// Login authenticates an account and sets the session cookie.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	result, err := h.useCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password are deliberately indistinguishable.
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return presenter.Error(c, http.StatusBadRequest, "Invalid credentials.")
		}
		log.Printf("login: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "An unexpected error occurred.")
	}

	// Session cookie: no Expires/Max-Age, the token carries its own expiry.
	c.Cookie(&fiber.Cookie{
		Name:     jwt.CookieName,
		Value:    result.Token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
		Secure:   c.Secure(),
	})

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"message": "Login successful.",
		"user": publicUser{
			ID:       result.User.ID.String(),
			Email:    result.User.Email,
			UserName: result.User.UserName,
			Role:     string(result.User.Role),
		},
	})
}

// Logout clears the session cookie. Idempotent: succeeds with no session.
// @Summary Logout
// @Tags    auth
// @Produce json
// @Success 200 {object} map[string]any
// @Router  /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     jwt.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
		Secure:   c.Secure(),
	})
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"message": "Logout successful.",
	})
}

// CheckAuth reports the identity carried by the verified session cookie.
// Runs behind the auth middleware; the token payload is trusted as-is.
// @Summary Check authentication
// @Tags    auth
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Router  /auth/check-auth [get]
func (h *AuthHandler) CheckAuth(c *fiber.Ctx) error {
	userID, _ := c.Locals(jwt.LocalUserID).(string)
	role, _ := c.Locals(jwt.LocalRole).(auth.Role)

	var message string
	switch role {
	case auth.RoleAdmin:
		message = "You are authenticated as an admin."
	case auth.RoleShopper:
		message = "You are authenticated as a user."
	default:
		return presenter.Error(c, http.StatusForbidden, "Role not recognized.")
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"message": message,
		"user": fiber.Map{
			"id":   userID,
			"role": string(role),
		},
	})
}
