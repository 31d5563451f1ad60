// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/4mubarak/alx-polly/auth"
	"github.com/4mubarak/alx-polly/cliparse"
	"github.com/4mubarak/alx-polly/middleware"
	"github.com/4mubarak/alx-polly/models"
	"github.com/4mubarak/alx-polly/store"
)

const minPasswordLen = 8

type AuthHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewAuthHandler(st *store.Store, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{store: st, cfg: cfg}
}

// SignUp handles POST /auth/signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.JSONResponse(w, http.StatusBadRequest, models.AuthResult{Error: errString("Invalid JSON")})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	displayName := strings.TrimSpace(req.DisplayName)

	if email == "" || !strings.Contains(email, "@") {
		middleware.JSONResponse(w, http.StatusBadRequest, models.AuthResult{Error: errString("Please provide a valid email address.")})
		return
	}
	if len(req.Password) < minPasswordLen {
		middleware.JSONResponse(w, http.StatusBadRequest, models.AuthResult{Error: errString("Password must be at least 8 characters.")})
		return
	}
	if displayName == "" {
		middleware.JSONResponse(w, http.StatusBadRequest, models.AuthResult{Error: errString("Please provide a display name.")})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.AuthResult{Error: errString("Failed to create account.")})
		return
	}

	user, err := h.store.CreateUser(email, displayName, hash)
	if err == store.ErrDuplicateEmail {
		middleware.JSONResponse(w, http.StatusConflict, models.AuthResult{Error: errString("An account with this email already exists.")})
		return
	}
	if err != nil {
		slog.Error("failed to create user", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.AuthResult{Error: errString(err.Error())})
		return
	}

	token, err := auth.MintSessionToken(user.ID, h.cfg.JWTSecret, h.cfg.TokenTTL)
	if err != nil {
		slog.Error("failed to mint session token", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.AuthResult{Error: errString("Failed to create session.")})
		return
	}

	slog.Info("user signed up", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.AuthResult{Token: token, User: &user})
}

// SignIn handles POST /auth/signin
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.JSONResponse(w, http.StatusBadRequest, models.AuthResult{Error: errString("Invalid JSON")})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Same response for unknown email and wrong password
	user, err := h.store.GetUserByEmail(email)
	if err == store.ErrNotFound {
		middleware.JSONResponse(w, http.StatusUnauthorized, models.AuthResult{Error: errString("Invalid email or password.")})
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.AuthResult{Error: errString(err.Error())})
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		middleware.JSONResponse(w, http.StatusUnauthorized, models.AuthResult{Error: errString("Invalid email or password.")})
		return
	}

	token, err := auth.MintSessionToken(user.ID, h.cfg.JWTSecret, h.cfg.TokenTTL)
	if err != nil {
		slog.Error("failed to mint session token", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.AuthResult{Error: errString("Failed to create session.")})
		return
	}

	slog.Info("user signed in", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, models.AuthResult{Token: token, User: &user})
}

// SignOut handles POST /auth/signout
// Session tokens are stateless, so sign-out is the client discarding its
// token; the endpoint exists so callers get a uniform result envelope.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.AuthResult{})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		middleware.JSONResponse(w, http.StatusUnauthorized, models.AuthResult{Error: errString("You must be logged in.")})
		return
	}

	user, err := h.store.GetUserByID(userID)
	if err == store.ErrNotFound {
		// Valid token for a deleted account
		middleware.JSONResponse(w, http.StatusUnauthorized, models.AuthResult{Error: errString("You must be logged in.")})
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.AuthResult{Error: errString(err.Error())})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AuthResult{User: &user})
}
