package handlers

import (
	"context"
	"net/http"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status string `json:"status"`
}

// HandleHealth reports whether the database is reachable
func HandleHealth(db Pinger, w http.ResponseWriter, r *http.Request) {
	if db == nil {
		writeError(w, r, "Service Unavailable", http.StatusServiceUnavailable, nil)
		return
	}
	if err := db.Ping(r.Context()); err != nil {
		writeError(w, r, "Service Unavailable", http.StatusServiceUnavailable, err)
		return
	}
	writeJSON(w, HealthResponse{Status: "ok"})
}
