// Package handler holds helpers shared by all HTTP handlers: JSON
// responses, domain error mapping, and request decoding with validation.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/nkozyrev/gameshop/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// StatusFromCode maps a domain error code to an HTTP status.
func StatusFromCode(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	case domain.ERATELIMIT:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// errorBody is the wire shape of every error response.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error writes err as a JSON error response. Internal errors are logged with
// their cause and surfaced with a generic message.
func Error(w http.ResponseWriter, logger *slog.Logger, err error) {
	code := domain.ErrorCode(err)
	if code == domain.EINTERNAL && logger != nil {
		logger.Error("request failed", "error", err)
	}

	JSON(w, StatusFromCode(code), errorBody{
		Error: errorDetail{
			Code:    code,
			Message: domain.ErrorMessage(err),
		},
	})
}

// Decode reads a JSON request body into dst and runs struct validation.
// Returns a domain EINVALID error suitable for Error on failure.
func Decode(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.Invalid("handler.decode", "Malformed request body")
	}
	if err := validate.Struct(dst); err != nil {
		return domain.Invalid("handler.decode", "Request failed validation")
	}
	return nil
}
