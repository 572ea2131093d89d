package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	authmw "github.com/closetdev/wardrobe/internal/middleware/auth"
	"github.com/closetdev/wardrobe/internal/mykafka"
	"github.com/closetdev/wardrobe/internal/service/auth"
)

type AuthHandler struct {
	Service  *auth.Service
	Producer *mykafka.Producer
}

type credentials struct {
	Email    string `json:"email"    form:"email"`
	Password string `json:"password" form:"password"`
}

func (h *AuthHandler) publish(c echo.Context, key string, event map[string]interface{}) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "user_events", key, event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req credentials
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email and password are required"})
	}

	user, err := h.Service.Signup(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email and password are required"})
		case errors.Is(err, auth.ErrEmailExists):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Email already exists"})
		default:
			c.Logger().Errorf("signup error: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
		}
	}

	h.publish(c, fmt.Sprint(user.ID), map[string]interface{}{
		"type":   "user_registered",
		"userID": user.ID,
		"email":  user.Email,
	})

	return c.JSON(http.StatusOK, echo.Map{"message": "User created successfully"})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req credentials
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid email or password"})
	}

	token, err := h.Service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid email or password"})
		}
		c.Logger().Errorf("login error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}

	h.publish(c, auth.NormalizeEmail(req.Email), map[string]interface{}{
		"type":  "user_logged_in",
		"email": auth.NormalizeEmail(req.Email),
	})

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"token":   token,
	})
}

// Logout runs behind RequireAuth, so the token in the context has already
// passed signature, expiry and revocation checks.
func (h *AuthHandler) Logout(c echo.Context) error {
	raw, claims, ok := authmw.Token(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
	}

	if err := h.Service.Logout(c.Request().Context(), raw, claims); err != nil {
		c.Logger().Errorf("logout error: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
	}

	if userID, ok := authmw.UserID(c); ok {
		h.publish(c, fmt.Sprint(userID), map[string]interface{}{
			"type":   "user_logged_out",
			"userID": userID,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Logout successful"})
}
