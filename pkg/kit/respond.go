package kit

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes v without a trailing newline so the body is byte-stable.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func WriteText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// Healthz answers the liveness probe.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	WriteText(w, http.StatusOK, "ok")
}

// Readyz answers the readiness probe.
func Readyz(w http.ResponseWriter, _ *http.Request) {
	WriteText(w, http.StatusOK, "ready")
}
