package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/product-inventory/internal/repository"
	"github.com/iliyamo/product-inventory/internal/utils"
)

// AuthHandler bundles dependencies for the unauthenticated endpoints.
type AuthHandler struct {
	Users      UserStore
	JWTSecret  string
	BcryptCost int
}

func NewAuthHandler(users UserStore, jwtSecret string, bcryptCost int) *AuthHandler {
	return &AuthHandler{Users: users, JWTSecret: jwtSecret, BcryptCost: bcryptCost}
}

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user account. The existence pre-check is advisory:
// the UNIQUE index on users.email arbitrates concurrent registrations,
// and a duplicate-key insert reports the same message as the pre-check.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	_, err := h.Users.GetByEmail(ctx, req.Email)
	if err == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "User already exists"})
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}

	hash, err := utils.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}

	user, err := h.Users.Create(ctx, req.Email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "User already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Something went wrong"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User created successfully",
		"user":    user,
	})
}

// Login verifies credentials and issues a session token with a fixed
// one-hour expiry. The password check is exactly as constant-time as the
// bcrypt comparison underneath it.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}

	if !utils.VerifyPassword(user.PasswordHash, req.Password) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.JWTSecret, user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"token":   access.Token,
	})
}
