package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/php-ini/thamaneya/internal/domain"
	"github.com/php-ini/thamaneya/pkg/ctxutil"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// errorResponse is the JSON body of every non-2xx response.
type errorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps a service error to an HTTP status. Only 5xx errors
// are logged; their message is never sent to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch fields := domain.FieldErrors(err); {
	case fields != nil:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "show not found")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			ctxutil.RequestIDAttr(r.Context()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads a single JSON object from the request body into dst.
// Unknown fields, trailing data and bodies over maxBodyBytes are rejected.
// Errors are returned as *domain.ValidationError or a plain bad-request error.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errBadBody("body must contain a single JSON object")
	}
	return nil
}

type errBadBody string

func (e errBadBody) Error() string { return string(e) }

func decodeError(err error) error {
	var (
		typeErr  *json.UnmarshalTypeError
		syntax   *json.SyntaxError
		dateErr  *dateError
		tooLarge *http.MaxBytesError
	)
	switch {
	case errors.As(err, &dateErr):
		return domain.NewValidationError("publishDate", "must be an RFC 3339 timestamp or YYYY-MM-DD")
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return domain.NewValidationError(typeErr.Field, "must be "+jsonKind(typeErr.Type.Kind()))
	case errors.As(err, &syntax), errors.Is(err, io.ErrUnexpectedEOF):
		return errBadBody("malformed JSON body")
	case errors.As(err, &tooLarge):
		return errBadBody("request body too large")
	case errors.Is(err, io.EOF):
		return errBadBody("request body is empty")
	default:
		// unknown field: json reports `json: unknown field "x"`
		return errBadBody(err.Error())
	}
}

func jsonKind(k reflect.Kind) string {
	switch k {
	case reflect.Int, reflect.Int32, reflect.Int64:
		return "an integer"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	}
	return "a value of the expected type"
}

// writeDecodeError writes the 400 response for a decodeJSON failure.
func writeDecodeError(w http.ResponseWriter, err error) {
	if fields := domain.FieldErrors(err); fields != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}
