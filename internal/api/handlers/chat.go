package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/cortexa/relay/internal/services/relay"
)

const (
	msgMessageRequired   = "Message and user id are required"
	msgPresenceNotFound  = "User not found. Please register first."
	msgDatabaseNotFound  = "User not found in database. Please register first!"
	chatStatusSuccessful = "success"
)

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
	UserID  string `json:"userId" validate:"required"`
}

func (req *ChatRequest) bindForm(values url.Values) {
	req.Message = values.Get("message")
	req.UserID = values.Get("userId")
}

type ChatResponse struct {
	Status string `json:"status"`
	Reply  string `json:"reply"`
}

// HandleChat relays one message to the completion model and returns its reply
func HandleChat(relayService relay.Service, w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !decodeOrReject(w, r, &req, msgMessageRequired, msgMessageRequired) {
		return
	}

	reply, err := relayService.Chat(r.Context(), req.UserID, req.Message)
	switch {
	case errors.Is(err, relay.ErrPresenceUserNotFound):
		writeError(w, r, msgPresenceNotFound, http.StatusNotFound, err)
		return
	case errors.Is(err, relay.ErrUserNotFound):
		writeError(w, r, msgDatabaseNotFound, http.StatusNotFound, err)
		return
	case err != nil:
		writeError(w, r, msgInternalError, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, ChatResponse{Status: chatStatusSuccessful, Reply: reply})
}
