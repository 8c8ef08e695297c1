package middleware

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	headerETag         = "ETag"
	headerIfNoneMatch  = "If-None-Match"
	headerCacheControl = "Cache-Control"

	// Device reads are cached server side and evicted on write, so clients
	// may keep a copy but must revalidate it on every use.
	revalidate = "no-cache"
)

// bodyRecorder holds back the status and body until the ETag is known.
// It shares the header map with the wrapped writer.
type bodyRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (b *bodyRecorder) WriteHeader(code int) {
	if b.status == 0 {
		b.status = code
	}
}

func (b *bodyRecorder) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}

	return b.body.Write(p)
}

func (b *bodyRecorder) statusCode() int {
	if b.status == 0 {
		return http.StatusOK
	}

	return b.status
}

// ConditionalGET tags successful GET and HEAD responses with a strong ETag
// and answers 304 Not Modified when If-None-Match already holds it. Other
// methods and non-2xx responses pass through untouched.
func ConditionalGET() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)

				return
			}

			recorder := &bodyRecorder{ResponseWriter: w}
			next.ServeHTTP(recorder, r)

			status := recorder.statusCode()
			body := recorder.body.Bytes()

			if status < http.StatusOK || status >= http.StatusMultipleChoices {
				w.WriteHeader(status)
				_, _ = w.Write(body)

				return
			}

			etag := entityTag(body)

			w.Header().Set(headerETag, etag)
			w.Header().Set(headerCacheControl, revalidate)

			if matchesAny(r.Header.Get(headerIfNoneMatch), etag) {
				w.Header().Del("Content-Length")
				w.WriteHeader(http.StatusNotModified)

				return
			}

			w.WriteHeader(status)

			if r.Method != http.MethodHead {
				_, _ = w.Write(body)
			}
		})
	}
}

// matchesAny applies the weak comparison If-None-Match calls for.
func matchesAny(ifNoneMatch, etag string) bool {
	ifNoneMatch = strings.TrimSpace(ifNoneMatch)

	switch ifNoneMatch {
	case "":
		return false
	case "*":
		return true
	}

	for candidate := range strings.SplitSeq(ifNoneMatch, ",") {
		if strings.TrimPrefix(strings.TrimSpace(candidate), "W/") == etag {
			return true
		}
	}

	return false
}

// entityTag is the quoted big-endian hex of the body's xxhash.
func entityTag(body []byte) string {
	var sum [8]byte
	binary.BigEndian.PutUint64(sum[:], xxhash.Sum64(body))

	return `"` + hex.EncodeToString(sum[:]) + `"`
}
