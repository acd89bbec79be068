package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/cortexa/relay/internal/logger"
	"github.com/cortexa/relay/pkg/httpext"
)

// writeError logs the cause and writes message; internal detail never reaches the client
func writeError(w http.ResponseWriter, r *http.Request, message string, code int, cause error) {
	l := log.Ctx(r.Context())

	event := l.Warn()
	if code >= http.StatusInternalServerError {
		event = l.Error()
	}
	event.
		Err(cause).
		Str("component", logger.HANDLER).
		Str("path", r.URL.Path).
		Int("status", code).
		Msg(message)

	httpext.JsonError(w, message, code)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	httpext.JsonResponse(w, http.StatusOK, v)
}
