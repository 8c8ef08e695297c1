package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/architeacher/device-registry/pkg/logger"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Recovery logs handler panics with their stack and lets respond write the
// 500. When the handler had already sent a status the client gets whatever
// was written so far, since the response can no longer be replaced.
func Recovery(log logger.Logger, respond http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}

				// An aborted response must keep unwinding so net/http drops
				// the connection silently.
				if err, ok := rvr.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rvr)
				}

				reqLog := log.WithContext(r.Context())
				reqLog.Error().
					Str("error", panicMessage(rvr)).
					Str("stack", string(debug.Stack())).
					Str("path", r.URL.Path).
					Str("method", r.Method).
					Bool("response_started", wrapped.Status() != 0).
					Msg("panic recovered")

				if wrapped.Status() == 0 {
					respond(wrapped, r)
				}
			}()

			next.ServeHTTP(wrapped, r)
		})
	}
}

func panicMessage(rvr any) string {
	switch v := rvr.(type) {
	case string:
		return v
	case error:
		return v.Error()
	default:
		return fmt.Sprintf("%v", v)
	}
}
