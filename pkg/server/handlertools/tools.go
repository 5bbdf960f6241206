package handlertools

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/nearbyfyi/ner/internal"
	"github.com/nearbyfyi/ner/pkg/formatters"
	"github.com/nearbyfyi/ner/pkg/models"
)

var log = internal.GetLogger()

// ErrorStatus maps an error to the HTTP status it should be reported with.
// fallback is used for errors that carry no more specific meaning.
func ErrorStatus(err error, fallback int) int {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, models.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrClassifierTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, models.ErrClassifierUnavailable):
		return http.StatusBadGateway
	}
	return fallback
}

// RenderError renders an error response.
func RenderError(w http.ResponseWriter, err error, status int) {
	status = ErrorStatus(err, status)
	if status == http.StatusRequestEntityTooLarge {
		err = fmt.Errorf("request body too large. send the text in smaller pieces")
	}

	if status >= http.StatusInternalServerError {
		log.Error(err)
	} else {
		log.Debug(err)
	}

	http.Error(w, err.Error(), status)
}

// ReadText reads the whole request body as text.
func ReadText(r *http.Request) (string, error) {
	if r.Body == nil {
		return "", nil
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Render writes body with the formatter's content type.
func Render(w http.ResponseWriter, f formatters.Formatter, body string) {
	w.Header().Set("Content-Type", f.ContentType()+"; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, body); err != nil {
		log.Errorf("error writing response: %v", err)
	}
}
