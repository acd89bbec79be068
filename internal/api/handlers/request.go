package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
)

const (
	msgBodyMissing   = "Request body is missing"
	msgInvalidFormat = "Invalid request format"
	msgInternalError = "Internal Server Error"
)

// use a single instance of Validate, it caches struct info
var validate = validator.New(validator.WithRequiredStructEnabled())

var errBodyMissing = errors.New("request body is missing")

// formBinder is implemented by request types that also accept
// application/x-www-form-urlencoded bodies
type formBinder interface {
	bindForm(values url.Values)
}

func decodeRequest(r *http.Request, dst formBinder) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errBodyMissing
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return err
		}
		if len(r.PostForm) == 0 {
			return errBodyMissing
		}
		dst.bindForm(r.PostForm)
		return nil
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errBodyMissing
		}
		return err
	}
	return nil
}

// decodeOrReject decodes and validates the body, writing a 400 on failure.
// It reports whether the handler should continue.
func decodeOrReject(w http.ResponseWriter, r *http.Request, dst formBinder, invalidMessage, missingMessage string) bool {
	if err := decodeRequest(r, dst); err != nil {
		if errors.Is(err, errBodyMissing) {
			writeError(w, r, missingMessage, http.StatusBadRequest, err)
			return false
		}
		writeError(w, r, msgInvalidFormat, http.StatusBadRequest, err)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		writeError(w, r, invalidMessage, http.StatusBadRequest, err)
		return false
	}
	return true
}
