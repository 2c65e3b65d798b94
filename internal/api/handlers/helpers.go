package handlers

import (
	"io"
	"net/http"

	"connectivity-check-service/internal/platform/logger"
)

func writeText(w http.ResponseWriter, r *http.Request, status int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, body); err != nil {
		logger.FromContext(r.Context()).WithError(err).Warnf("write failed: method=%s path=%s", r.Method, r.URL.Path)
	}
}

func writeServerError(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
