package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}

// outcome describes how a successful write is reported. Location is used
// for page navigations; Status and Body for programmatic callers.
type outcome struct {
	Location string
	Status   int
	Body     string
}

// respond finishes a request that changed state. Programmatic callers get a
// bare status (and optional plain-text body); everyone else is redirected.
func respond(w http.ResponseWriter, r *http.Request, programmatic bool, o outcome) {
	if !programmatic {
		http.Redirect(w, r, o.Location, http.StatusSeeOther)
		return
	}

	if o.Body == "" {
		w.WriteHeader(o.Status)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(o.Status)
	if _, err := w.Write([]byte(o.Body)); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}
