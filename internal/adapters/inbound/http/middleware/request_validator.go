package middleware

import (
	"fmt"
	"net/http"

	"github.com/architeacher/device-registry/pkg/logger"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
)

const mimeJSON = "application/json"

type (
	// RejectFunc writes the answer for a request that failed validation.
	RejectFunc func(w http.ResponseWriter, r *http.Request, status int, err error)

	RequestValidatorOptions struct {
		Options      openapi3filter.Options
		MaxBodyBytes int64
		Reject       RejectFunc
	}
)

// RequestValidator checks requests against doc before the handlers run.
// Requests the document does not describe pass through untouched so the
// router answers 404 and 405 itself. A body sent without a Content-Type
// is read as JSON.
func RequestValidator(log logger.Logger, doc *openapi3.T, options RequestValidatorOptions) func(http.Handler) http.Handler {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create OpenAPI router")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)

				return
			}

			route, pathParams, err := router.FindRoute(r)
			if err != nil {
				next.ServeHTTP(w, r)

				return
			}

			if r.ContentLength != 0 && r.Header.Get("Content-Type") == "" {
				r.Header.Set("Content-Type", mimeJSON)
			}

			if options.MaxBodyBytes > 0 && r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, options.MaxBodyBytes)
			}

			if status, err := validateRequest(r, route, pathParams, &options.Options); err != nil {
				options.Reject(w, r, status, err)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func validateRequest(r *http.Request, route *routers.Route, pathParams map[string]string, options *openapi3filter.Options) (int, error) {
	input := &openapi3filter.RequestValidationInput{
		Request:    r,
		PathParams: pathParams,
		Route:      route,
		Options:    options,
	}

	if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
		switch e := err.(type) {
		case *openapi3filter.RequestError:
			return http.StatusBadRequest, e
		case *openapi3filter.SecurityRequirementsError:
			return http.StatusUnauthorized, e
		default:
			return http.StatusInternalServerError, fmt.Errorf("unexpected validation error: %w", err)
		}
	}

	return http.StatusOK, nil
}
