package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Innocent9712/much-to-do/calendar/internal/calendar"
)

// ErrNotFound reports a request for an unknown endpoint.
var ErrNotFound = errors.New("not found")

// statusFor maps an error to its HTTP status.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, calendar.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// fail records err on the context and writes a plain-text error response.
func (h *Handler) fail(c *gin.Context, err error) {
	_ = c.Error(err)

	status := statusFor(err)
	switch status {
	case http.StatusNotFound:
		c.String(status, "Not Found")
	case http.StatusInternalServerError:
		c.String(status, "Server Error: %v", err)
	default:
		c.String(status, "%s: %v", http.StatusText(status), err)
	}
}

// bindError converts a body decoding or validation failure into an ErrInvalidInput with a
// short description. Body-limit errors pass through untouched.
func bindError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	return fmt.Errorf("%w: %s", calendar.ErrInvalidInput, describeBindError(err))
}

func describeBindError(err error) string {
	var (
		verrs     validator.ValidationErrors
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &verrs):
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, describeField(fe))
		}
		return strings.Join(msgs, "; ")
	case errors.Is(err, io.EOF):
		return "request body is empty"
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return "malformed JSON body"
	case errors.As(err, &typeErr):
		return fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type)
	default:
		return err.Error()
	}
}

func describeField(fe validator.FieldError) string {
	name := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	default:
		return name + " is invalid"
	}
}
