package middleware

import (
	"context"
	"net/http"
	"strings"
)

type quietKey struct{}

// QuietPaths keeps the access logger silent for the given paths. Health checks hit
// these every few seconds and would drown out device traffic.
func QuietPaths(paths ...string) func(http.Handler) http.Handler {
	quiet := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		quiet[strings.TrimSuffix(p, "/")] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := quiet[strings.TrimSuffix(r.URL.Path, "/")]; ok {
				r = r.WithContext(context.WithValue(r.Context(), quietKey{}, true))
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isQuiet(ctx context.Context) bool {
	quiet, _ := ctx.Value(quietKey{}).(bool)

	return quiet
}
