package handlers

import (
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/architeacher/device-registry/internal/domain/model"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// GetSwagger parses and validates the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("loading OpenAPI document: %w", err)
	}

	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}

	return doc, nil
}

// OpenAPIDocument serves the embedded document as published.
func OpenAPIDocument(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set(contentTypeHeader, "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openAPIDocument)
}

// RequestRejected answers a request the OpenAPI validator refused, in the
// same envelope the handlers use for domain failures.
func RequestRejected(w http.ResponseWriter, r *http.Request, status int, err error) {
	var (
		requestErr *openapi3filter.RequestError
		schemaErr  *openapi3.SchemaError
		tooLarge   *http.MaxBytesError
	)

	switch {
	case errors.As(err, &tooLarge):
		writeErrorResponse(w, r, http.StatusRequestEntityTooLarge, codeInvalidJSON, "request body too large")
	case !errors.As(err, &requestErr):
		writeErrorResponse(w, r, status, codeInternalError, msgInternalError)
	case requestErr.Parameter != nil && requestErr.Parameter.In == openapi3.ParameterInPath:
		writeErrorResponse(w, r, http.StatusBadRequest, codeInvalidID, msgInvalidDeviceID)
	case requestErr.Parameter != nil:
		errs := &model.ValidationErrors{}
		errs.Add(requestErr.Parameter.Name, parameterMessage(requestErr.Parameter.Name), model.ValidationCodeInvalid)

		writeDomainError(w, r, errs)
	case requestErr.RequestBody != nil && errors.As(err, &schemaErr):
		writeDomainError(w, r, schemaViolation(schemaErr))
	default:
		writeErrorResponse(w, r, http.StatusBadRequest, codeInvalidJSON, msgInvalidRequestBody)
	}
}

func parameterMessage(name string) string {
	if name == stateQueryParam {
		return msgInvalidState
	}

	return "invalid " + name
}

// schemaViolation converts the first schema failure into the field level
// validation error the domain would have raised.
func schemaViolation(schemaErr *openapi3.SchemaError) *model.ValidationErrors {
	field := strings.Join(schemaErr.JSONPointer(), ".")
	if field == "" {
		field = "body"
	}

	errs := &model.ValidationErrors{}

	switch schemaErr.SchemaField {
	case "required":
		errs.Add(field, field+" is required", model.ValidationCodeRequired)
	case "maxLength":
		errs.Add(field, fmt.Sprintf("%s must be at most %d characters", field, model.MaxFieldLength), model.ValidationCodeTooLong)
	case "pattern":
		if field == "state" {
			errs.Add(field, msgInvalidState, model.ValidationCodeInvalid)

			break
		}

		fallthrough
	default:
		errs.Add(field, fmt.Sprintf("%s: %s", field, schemaErr.Reason), model.ValidationCodeInvalid)
	}

	return errs
}
