package page

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/a-h/templ"

	"github.com/MrJamesThe3rd/invoicedash/internal/apperr"
	"github.com/MrJamesThe3rd/invoicedash/internal/view"
)

// FlashCookie carries a one-shot message to the next rendered page.
const FlashCookie = "flash"

// Renderer writes server-rendered pages with the shared layout.
type Renderer struct {
	appName  string
	userName func(ctx context.Context) string
}

func NewRenderer(appName string, userName func(ctx context.Context) string) *Renderer {
	return &Renderer{appName: appName, userName: userName}
}

func (p *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := c.Render(r.Context(), w); err != nil {
		slog.Error("failed to render page", "path", r.URL.Path, "error", err)
	}
}

// Layout builds the page chrome and consumes any pending flash message.
func (p *Renderer) Layout(w http.ResponseWriter, r *http.Request, title string) view.Layout {
	l := view.Layout{AppName: p.appName, Title: title}

	if p.userName != nil {
		l.UserName = p.userName(r.Context())
	}

	if c, err := r.Cookie(FlashCookie); err == nil {
		if msg, err := url.QueryUnescape(c.Value); err == nil {
			l.Flash = msg
		}

		http.SetCookie(w, &http.Cookie{Name: FlashCookie, Path: "/", MaxAge: -1})
	}

	return l
}

// Fail renders the error page for err. Only the generic message of an
// *apperr.Error is shown; anything else is reported as an internal failure.
func (p *Renderer) Fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "Something went wrong."

	if apperr.KindOf(err) != apperr.KindNone {
		message = err.Error()
	}

	if apperr.Is(err, apperr.KindNotFound) {
		status = http.StatusNotFound
	}

	p.Render(w, r, status, view.Error(view.ErrorPage{
		Layout:  p.Layout(w, r, "Error"),
		Message: message,
	}))
}

// SetFlash stores a one-shot message shown on the next rendered page.
func SetFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   60,
	})
}
