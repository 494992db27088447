package session

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/invoicedash/internal/auth"
	"github.com/MrJamesThe3rd/invoicedash/internal/http/page"
	"github.com/MrJamesThe3rd/invoicedash/internal/view"
)

type Handler struct {
	auth         *auth.Service
	pages        *page.Renderer
	cookieSecure bool
}

func NewHandler(svc *auth.Service, pages *page.Renderer, cookieSecure bool) *Handler {
	return &Handler{auth: svc, pages: pages, cookieSecure: cookieSecure}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/login", h.loginForm)
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	if _, err := authenticate(r, h.auth); err == nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	h.pages.Render(w, r, http.StatusOK, view.Login(view.LoginPage{
		Layout: h.pages.Layout(w, r, "Login"),
	}))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	creds := auth.Credentials{
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	}

	token, err := h.auth.SignIn(r.Context(), creds)
	if err != nil {
		msg, ok := auth.Message(err)
		if !ok {
			slog.Error("sign in", "error", err)
			h.pages.Fail(w, r, err)

			return
		}

		h.pages.Render(w, r, http.StatusUnauthorized, view.Login(view.LoginPage{
			Layout:       h.pages.Layout(w, r, "Login"),
			Email:        creds.Email,
			ErrorMessage: msg,
		}))

		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.auth.SessionTTL().Seconds()),
	})

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
