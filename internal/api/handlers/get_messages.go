package handlers

import (
	"net/http"

	"github.com/cortexa/relay/internal/domain/models"
	"github.com/cortexa/relay/internal/services/relay"
)

type GetMessagesResponse struct {
	Messages []models.Chat `json:"messages"`
}

// HandleGetMessages returns every stored turn for a user in chronological order
func HandleGetMessages(relayService relay.Service, w http.ResponseWriter, r *http.Request) {
	var req UserIDRequest
	if !decodeOrReject(w, r, &req, msgUserIDRequired, msgUserIDRequired) {
		return
	}

	messages, err := relayService.GetMessages(r.Context(), req.UserID)
	if err != nil {
		writeError(w, r, msgInternalError, http.StatusInternalServerError, err)
		return
	}
	if messages == nil {
		messages = []models.Chat{}
	}

	writeJSON(w, GetMessagesResponse{Messages: messages})
}
