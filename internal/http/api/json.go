package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/invoicedash/internal/apperr"
	"github.com/MrJamesThe3rd/invoicedash/internal/invoice"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeFailure maps an application error to its status code. Internal details
// never reach the client.
func writeFailure(w http.ResponseWriter, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		writeError(w, http.StatusNotFound, err.Error())
	case apperr.KindValidationFailed:
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case apperr.KindNone:
		writeError(w, http.StatusInternalServerError, "internal error")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeState(w http.ResponseWriter, okStatus int, s invoice.State) {
	status := okStatus

	switch s.Failure {
	case apperr.KindNone:
	case apperr.KindValidationFailed:
		status = http.StatusUnprocessableEntity
	default:
		status = http.StatusInternalServerError
	}

	writeJSON(w, status, toState(s))
}

func readJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
