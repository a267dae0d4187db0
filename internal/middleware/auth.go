package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/CagilDisbudak/MoviePage/internal/auth"
	"github.com/CagilDisbudak/MoviePage/internal/models"
)

type ctxKey string

const userKey ctxKey = "auth_user"

// ErrMessageCredentials is the single 401 body for every authentication
// failure: missing header, bad signature, expired token, or a subject
// that no longer exists. The cases are deliberately indistinguishable.
const ErrMessageCredentials = "could not validate credentials"

// ErrMessageForbidden is the 403 body for a valid identity with an
// insufficient role.
const ErrMessageForbidden = "insufficient privileges"

// UserStore resolves a token subject to a live user record.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// Authenticator verifies the bearer token on each request and loads the
// user it names. Authentication is per-request: nothing is cached past
// the request boundary.
type Authenticator struct {
	Tokens *auth.TokenManager
	Users  UserStore
}

// Middleware rejects the request with 401 unless a valid bearer token is
// presented and its subject still exists. On success the user travels in
// the request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			writeJSONError(w, ErrMessageCredentials, http.StatusUnauthorized)
			return
		}

		claims, err := a.Tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeJSONError(w, ErrMessageCredentials, http.StatusUnauthorized)
			return
		}

		// Soft reference: the subject is re-resolved on every request and
		// may have been removed since the token was issued.
		user, err := a.Users.GetByUsername(r.Context(), claims.Subject)
		if err != nil {
			writeJSONError(w, ErrMessageCredentials, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole returns 403 when the authenticated user's role differs from
// role. Must run after Authenticator.Middleware; a missing user means the
// chain is miswired and the request is rejected as unauthenticated.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUser(r.Context())
			if !ok {
				writeJSONError(w, ErrMessageCredentials, http.StatusUnauthorized)
				return
			}
			if user.Role != role {
				writeJSONError(w, ErrMessageForbidden, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUser returns the authenticated user stored by Authenticator.Middleware.
func GetUser(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

// WithUser returns a context carrying user. Exposed for handler tests.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func writeJSONError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
