package handlers

import (
	"net/http"
	"net/url"

	"github.com/cortexa/relay/internal/domain/models"
	"github.com/cortexa/relay/internal/services/relay"
)

const msgUserIDRequired = "User ID is required"

type UserIDRequest struct {
	UserID string `json:"userId" validate:"required"`
}

func (req *UserIDRequest) bindForm(values url.Values) {
	req.UserID = values.Get("userId")
}

type CheckUserResponse struct {
	UserID       string        `json:"userId"`
	ExistingUser []models.User `json:"existingUser"`
}

// HandleCheckUser reports the database rows stored for a user id
func HandleCheckUser(relayService relay.Service, w http.ResponseWriter, r *http.Request) {
	var req UserIDRequest
	if !decodeOrReject(w, r, &req, msgUserIDRequired, msgBodyMissing) {
		return
	}

	users, err := relayService.CheckUser(r.Context(), req.UserID)
	if err != nil {
		writeError(w, r, msgInternalError, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, CheckUserResponse{UserID: req.UserID, ExistingUser: users})
}
