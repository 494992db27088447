package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/invoicedash/internal/auth"
	"github.com/MrJamesThe3rd/invoicedash/internal/user"
)

type contextKey string

const userContextKey contextKey = "user"

// UserFromContext returns the signed-in user, or nil outside authenticated routes.
func UserFromContext(ctx context.Context) *user.User {
	u, _ := ctx.Value(userContextKey).(*user.User)
	return u
}

func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, userContextKey, u)
}

func UserName(ctx context.Context) string {
	if u := UserFromContext(ctx); u != nil {
		return u.Name
	}

	return ""
}

// UserKey identifies the signed-in user for per-user caching.
func UserKey(r *http.Request) string {
	if u := UserFromContext(r.Context()); u != nil {
		return u.ID.String()
	}

	return ""
}

// RequirePage sends unauthenticated visitors to the login page.
func RequirePage(svc *auth.Service) func(http.Handler) http.Handler {
	return require(svc, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})
}

// RequireAPI answers unauthenticated API calls with 401.
func RequireAPI(svc *auth.Service) func(http.Handler) http.Handler {
	return require(svc, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Unauthorized"}` + "\n"))
	})
}

func require(svc *auth.Service, deny http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, err := authenticate(r, svc)
			if err != nil {
				if errors.Is(err, auth.ErrInvalidSession) || errors.Is(err, http.ErrNoCookie) {
					deny(w, r)
					return
				}

				slog.Error("loading session", "error", err)
				http.Error(w, "internal error", http.StatusInternalServerError)

				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}

func authenticate(r *http.Request, svc *auth.Service) (*user.User, error) {
	cookie, err := r.Cookie(auth.CookieName)
	if err != nil {
		return nil, err
	}

	return svc.UserFromSession(r.Context(), cookie.Value)
}
