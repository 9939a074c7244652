package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"mlserve/internal/pkg/message"
	"mlserve/internal/pkg/web"
)

// CheckContentType rejects payload-bearing requests that do not declare a
// JSON body. Mounted on POST routes only so the probe GETs pass through.
func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get(web.HeaderContentType)

		if !strings.HasPrefix(contentType, web.MimeJSON) {
			web.Fail(w, http.StatusUnsupportedMediaType, fmt.Errorf("invalid content-type: %s", contentType), message.InvalidInput, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
