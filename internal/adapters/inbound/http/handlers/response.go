package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/architeacher/device-registry/internal/adapters/inbound/http/middleware"
	"github.com/architeacher/device-registry/internal/domain/model"
	"github.com/architeacher/device-registry/pkg/circuitbreaker"
)

const (
	contentTypeHeader = "Content-Type"
	applicationJSON   = "application/json"

	codeNotFound           = "NOT_FOUND"
	codeConflict           = "CONFLICT"
	codeInvalidTransition  = "INVALID_TRANSITION"
	codeValidation         = "VALIDATION_ERROR"
	codeInvalidID          = "INVALID_ID"
	codeInvalidJSON        = "INVALID_JSON"
	codeServiceUnavailable = "SERVICE_UNAVAILABLE"
	codeInternalError      = "INTERNAL_ERROR"

	msgDeviceNotFound     = "device not found"
	msgInvalidDeviceID    = "invalid device ID"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidState       = "state must be one of available, in-use, inactive"
	msgUnavailable        = "service temporarily unavailable"
	msgInternalError      = "internal server error"
)

type (
	fieldError struct {
		Field   string `json:"field"`
		Message string `json:"message"`
		Code    string `json:"code"`
	}

	// ErrorResponse is the body of every non-2xx answer.
	ErrorResponse struct {
		Code      string       `json:"code"`
		Message   string       `json:"message"`
		Path      string       `json:"path"`
		Method    string       `json:"method"`
		TraceID   string       `json:"traceId"`
		Timestamp time.Time    `json:"timestamp"`
		Details   []fieldError `json:"details,omitempty"`
	}
)

func writeJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set(contentTypeHeader, applicationJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, code, message string, details ...fieldError) {
	writeJSONResponse(w, status, ErrorResponse{
		Code:      code,
		Message:   message,
		Path:      r.URL.Path,
		Method:    r.Method,
		TraceID:   middleware.GetTraceID(r.Context()),
		Timestamp: time.Now().UTC(),
		Details:   details,
	})
}

// InternalError answers 500 in the registry's error envelope.
func InternalError(w http.ResponseWriter, r *http.Request) {
	writeErrorResponse(w, r, http.StatusInternalServerError, codeInternalError, msgInternalError)
}

// writeDomainError maps registry and store failures onto status codes.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs *model.ValidationErrors

	switch {
	case errors.Is(err, model.ErrDeviceNotFound):
		writeErrorResponse(w, r, http.StatusNotFound, codeNotFound, msgDeviceNotFound)
	case errors.Is(err, model.ErrInvalidTransition):
		writeErrorResponse(w, r, http.StatusBadRequest, codeInvalidTransition, err.Error())
	case errors.Is(err, model.ErrDuplicateDevice):
		writeErrorResponse(w, r, http.StatusConflict, codeConflict, err.Error())
	case errors.As(err, &validationErrs):
		details := make([]fieldError, 0, len(validationErrs.Errors))
		for _, e := range validationErrs.Errors {
			details = append(details, fieldError(e))
		}

		writeErrorResponse(w, r, http.StatusBadRequest, codeValidation, validationErrs.Error(), details...)
	case errors.Is(err, model.ErrInvalidDeviceID):
		writeErrorResponse(w, r, http.StatusBadRequest, codeInvalidID, msgInvalidDeviceID)
	case errors.Is(err, model.ErrInvalidState):
		writeErrorResponse(w, r, http.StatusBadRequest, codeValidation, msgInvalidState)
	case circuitbreaker.IsUnavailable(err):
		writeErrorResponse(w, r, http.StatusServiceUnavailable, codeServiceUnavailable, msgUnavailable)
	default:
		writeErrorResponse(w, r, http.StatusInternalServerError, codeInternalError, msgInternalError)
	}
}
