package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/blogdrown/blogdrown/internal/domain"
)

// ErrorResponse is the wire shape for every error: a human message plus
// field-keyed detail where one exists.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func newErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message, Errors: map[string]string{}}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the domain error taxonomy onto status codes. The core
// never decides transport representation; this is the single place that
// does.
func writeError(w http.ResponseWriter, component string, err error) {
	var lengthErr *domain.LengthError
	var conflictErr *domain.ConflictError
	var permissionErr *domain.PermissionError

	switch {
	case errors.As(err, &lengthErr):
		resp := newErrorResponse("Validation failed")
		resp.Errors[lengthErr.Field] = lengthErr.Error()
		writeJSON(w, http.StatusUnprocessableEntity, resp)
	case errors.As(err, &conflictErr):
		resp := newErrorResponse("User Already Exists")
		for field, msg := range conflictErr.Fields {
			resp.Errors[field] = msg
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.As(err, &permissionErr):
		writeJSON(w, http.StatusForbidden, newErrorResponse(permissionErr.Error()))
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, newErrorResponse("Not Found"))
	case errors.Is(err, domain.ErrBadCredentials):
		writeJSON(w, http.StatusUnauthorized, newErrorResponse("Bad Credentials"))
	default:
		log.Printf("ERROR [%s] %v", component, err)
		writeJSON(w, http.StatusInternalServerError, newErrorResponse("Internal server error"))
	}
}

func writeInvalidBody(w http.ResponseWriter, field string) {
	resp := newErrorResponse("Invalid request body")
	if field != "" {
		resp.Errors[field] = "structurally invalid"
	}
	writeJSON(w, http.StatusBadRequest, resp)
}

// writeFieldErrors reports every invalid field at once.
func writeFieldErrors(w http.ResponseWriter, fieldErrors map[string]string) {
	resp := newErrorResponse("Validation failed")
	for field, msg := range fieldErrors {
		resp.Errors[field] = msg
	}
	writeJSON(w, http.StatusUnprocessableEntity, resp)
}
