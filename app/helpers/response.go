package helpers

import (
	"net/http"

	"github.com/gomartghana/gomart-api/app/apperrors"
	"github.com/unrolled/render"
)

// Envelope is the JSON response shape every endpoint returns.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

var jsonRenderer = render.New(render.Options{
	IndentJSON: false,
})

func RespondSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	_ = jsonRenderer.JSON(w, status, Envelope{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func RespondError(w http.ResponseWriter, err error) {
	_ = jsonRenderer.JSON(w, apperrors.StatusCode(err), Envelope{
		Status:  "error",
		Message: apperrors.MessageOf(err),
	})
}

func RespondErrorMessage(w http.ResponseWriter, status int, message string) {
	_ = jsonRenderer.JSON(w, status, Envelope{
		Status:  "error",
		Message: message,
	})
}
