// errors standardizes error responses of the REST layer. Service sentinels
// are mapped to an HTTP status and a short, safe message; anything unknown
// becomes 500 "internal error" without details.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/credit-dispute/internal/service"
)

// StatusClientClosedRequest — non-standard code for a client that went away.
const StatusClientClosedRequest = 499

// ErrBadRequest — request body or path could not be parsed.
var ErrBadRequest = errors.New("bad request")

// APIError — uniform error body for the web client.
// Code is a stable machine-readable key, Message a safe description,
// RequestID echoes X-Request-Id when present.
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — root object of an error reply.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

type mapping struct {
	target  error
	status  int
	code    string
	message string
}

// Order matters: the first match wins.
var table = []mapping{
	{ErrBadRequest, http.StatusBadRequest, "invalid_argument", "invalid request"},
	{service.ErrInvalidInput, http.StatusBadRequest, "invalid_argument", "invalid input"},
	{service.ErrInvalidEmail, http.StatusBadRequest, "invalid_email", "invalid email format"},
	{service.ErrWeakPassword, http.StatusBadRequest, "weak_password", "password is too short"},
	{service.ErrPasswordTooLong, http.StatusBadRequest, "password_too_long", "password is too long"},
	{service.ErrInvalidStatus, http.StatusBadRequest, "invalid_status", "invalid dispute status"},
	{service.ErrEmailTaken, http.StatusConflict, "already_exists", "user already exists"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials", "invalid credentials"},
	{service.ErrTokenExpired, http.StatusUnauthorized, "token_expired", "token expired"},
	{service.ErrInvalidToken, http.StatusUnauthorized, "unauthenticated", "invalid or expired token"},
	{service.ErrForbidden, http.StatusForbidden, "permission_denied", "access denied"},
	{service.ErrNotFound, http.StatusNotFound, "not_found", "not found"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded"},
	{context.Canceled, StatusClientClosedRequest, "canceled", "canceled"},
}

// ToHTTP converts err into a status and response body.
// A nil err is a programming error and yields 500 rather than a 200 with an
// error body.
func ToHTTP(err error) (int, ErrorResponse) {
	if err != nil {
		for _, m := range table {
			if errors.Is(err, m.target) {
				return m.status, ErrorResponse{Error: APIError{Code: m.code, Message: m.message}}
			}
		}
	}

	return http.StatusInternalServerError, ErrorResponse{
		Error: APIError{
			Code:    "internal",
			Message: "internal error",
		},
	}
}

// WriteError writes status and body, adding request_id from the header.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
