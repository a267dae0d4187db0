package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/CagilDisbudak/MoviePage/internal/models"
	"github.com/CagilDisbudak/MoviePage/internal/repo"
	"github.com/go-chi/chi/v5"
)

// ==========================
// UserHandler
// ==========================
// Read-only user endpoints; creation goes through /auth/register so the
// password always passes the hasher.
type UserHandler struct {
	Repo *repo.UserRepo
}

// ==========================
// List Users
// ==========================
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit := 50
	offset := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if val, err := strconv.Atoi(l); err == nil && val > 0 {
			limit = val
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if val, err := strconv.Atoi(o); err == nil && val >= 0 {
			offset = val
		}
	}
	users, err := h.Repo.List(r.Context(), limit, offset)
	if err != nil {
		slog.Error("list users", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	total, err := h.Repo.Count(r.Context())
	if err != nil {
		slog.Error("count users", "error", err)
		JSONError(w, ErrMessageInternal, http.StatusInternalServerError)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"items":  users,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// ==========================
// Get User
// ==========================
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		JSONError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	user, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		JSONError(w, "user not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}
