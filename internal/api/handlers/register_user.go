package handlers

import (
	"net/http"
	"net/url"

	"github.com/cortexa/relay/internal/services/relay"
)

const msgNameEmailRequired = "Name and email are required."

type RegisterUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

func (req *RegisterUserRequest) bindForm(values url.Values) {
	req.Name = values.Get("name")
	req.Email = values.Get("email")
}

type RegisterUserResponse struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// HandleRegisterUser registers the caller with the chat provider and the database
func HandleRegisterUser(relayService relay.Service, w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if !decodeOrReject(w, r, &req, msgNameEmailRequired, msgNameEmailRequired) {
		return
	}

	user, err := relayService.RegisterUser(r.Context(), req.Name, req.Email)
	if err != nil {
		writeError(w, r, msgInternalError, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, RegisterUserResponse{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
	})
}
