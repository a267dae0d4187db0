package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/CagilDisbudak/MoviePage/internal/auth"
	"github.com/CagilDisbudak/MoviePage/internal/metrics"
	"github.com/CagilDisbudak/MoviePage/internal/middleware"
	"github.com/CagilDisbudak/MoviePage/internal/models"
	"github.com/CagilDisbudak/MoviePage/internal/repo"
	"github.com/lib/pq"
)

// ==========================
// Auth Handler
// ==========================
type AuthHandler struct {
	UserRepo *repo.UserRepo
	Tokens   *auth.TokenManager
}

// dummyHash is compared against when the username is unknown so login
// takes the same time on both failure paths.
var dummyHash, _ = auth.HashPassword("timing-equalizer")

// ==========================
// Register
// ==========================
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	fields := make(map[string]string)
	if input.Username == "" {
		fields["username"] = "required"
	}
	if input.Password == "" {
		fields["password"] = "required"
	}
	role := input.Role
	if role == "" {
		role = models.RoleUser
	}
	if !models.ValidRole(role) {
		fields["role"] = "must be user or admin"
	}
	if len(fields) > 0 {
		JSONValidationError(w, "validation failed", fields, http.StatusBadRequest)
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		slog.Error("register: hash password", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	user, err := h.UserRepo.Create(r.Context(), input.Username, hash, role)
	if err != nil {
		// Unique violation on username: the row was never inserted, so the
		// failed attempt leaves no partial state behind.
		if e, ok := err.(*pq.Error); ok && e.Code == "23505" {
			metrics.RecordRegistration("conflict")
			JSONError(w, "username already taken", http.StatusConflict)
			return
		}
		slog.Error("register: create user", "error", err)
		metrics.RecordRegistration("error")
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	metrics.RecordRegistration("success")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(user)
}

// ==========================
// Login
// ==========================
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	user, err := h.UserRepo.GetByUsername(r.Context(), input.Username)
	if err != nil {
		auth.CheckPassword(input.Password, dummyHash)
		metrics.RecordLogin("failure")
		JSONError(w, ErrMessageLogin, http.StatusUnauthorized)
		return
	}

	if !auth.CheckPassword(input.Password, user.PasswordHash) {
		metrics.RecordLogin("failure")
		JSONError(w, ErrMessageLogin, http.StatusUnauthorized)
		return
	}

	token, err := h.Tokens.Issue(user.Username, user.Role)
	if err != nil {
		slog.Error("login: issue token", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}

	metrics.RecordLogin("success")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// ==========================
// Logout
// ==========================
// Tokens are stateless and cannot be revoked server-side; logout is a
// client-side instruction to discard the token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "logged out"})
}

// ==========================
// Me (identity of the presented token)
// ==========================
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		JSONError(w, middleware.ErrMessageCredentials, http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}
