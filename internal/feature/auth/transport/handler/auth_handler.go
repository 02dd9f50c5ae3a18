// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"giftlink_backend/internal/feature/auth/transport/http/dto"
	"giftlink_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the credential and session-token operations.
// Following Go convention, the interface is defined by the consumer (handler)
// rather than the provider (usecase).
type AuthUsecase interface {
	// Register creates a new account and returns a session token for it.
	Register(ctx context.Context, email, password, firstName, lastName string) (*usecase.RegisterResult, error)
	// Login authenticates a user and returns a session token plus profile fields.
	Login(ctx context.Context, email, password string) (*usecase.LoginResult, error)
	// UpdateProfile sets the first name of the account identified by email.
	UpdateProfile(ctx context.Context, email, firstName string) (*usecase.UpdateResult, error)
}

// AuthHandler processes HTTP requests for authentication operations.
// It depends on the AuthUsecase interface and handles JSON requests/responses.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler with the usecase injected.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles the user registration endpoint.
// - 400 on validation errors or a duplicate email
// - 200 with {authtoken, email} on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: err.Error()})
		return
	}

	res, err := h.auth.Register(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("register rejected: email taken", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "Email id already exists"})
			return
		}
		// Internal detail stays in the log, never in the response body.
		slog.Error("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.RegisterRes{AuthToken: res.Token, Email: res.Email})
}

// Login handles the user login endpoint.
// - 400 on validation errors
// - 404 for an unknown email or a wrong password
// - 200 with {authtoken, userName, userEmail} on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: err.Error()})
		return
	}

	res, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			slog.Warn("login rejected: user not found", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "User not found"})
		case errors.Is(err, usecase.ErrWrongPassword):
			slog.Warn("login rejected: wrong password", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "Wrong password"})
		default:
			slog.Error("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.LoginRes{AuthToken: res.Token, UserName: res.UserName, UserEmail: res.UserEmail})
}

// Update handles the profile update endpoint. The account is identified by
// the `email` request header rather than the caller's token.
// - 400 when the header is missing or the body fails validation
// - 404 for an unknown email
// - 200 with {authtoken} on success
func (h *AuthHandler) Update(c *gin.Context) {
	email := c.GetHeader("email")
	if email == "" {
		slog.Warn("update rejected: no email header", "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: "Email not found in the request headers"})
		return
	}

	var req dto.UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: err.Error()})
		return
	}

	res, err := h.auth.UpdateProfile(c.Request.Context(), email, req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			slog.Warn("update rejected: user not found", "email", email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusNotFound, dto.ErrorRes{Error: "User not found"})
			return
		}
		slog.Error("update failed", "error", err, "email", email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, dto.UpdateRes{AuthToken: res.Token})
}
