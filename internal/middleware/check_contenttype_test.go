package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mlserve/internal/middleware"
	"mlserve/internal/pkg/web"
)

func TestCheckContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		contentType    string
		wantStatusCode int
		wantNextCalled bool
	}{
		{
			name:           "json is accepted",
			contentType:    web.MimeJSON,
			wantStatusCode: http.StatusOK,
			wantNextCalled: true,
		},
		{
			name:           "json with charset is accepted",
			contentType:    "application/json; charset=utf-8",
			wantStatusCode: http.StatusOK,
			wantNextCalled: true,
		},
		{
			name:           "plain text is rejected",
			contentType:    "text/plain",
			wantStatusCode: http.StatusUnsupportedMediaType,
		},
		{
			name:           "missing content type is rejected",
			wantStatusCode: http.StatusUnsupportedMediaType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader("{}"))
			if tt.contentType != "" {
				req.Header.Set(web.HeaderContentType, tt.contentType)
			}
			rec := httptest.NewRecorder()

			middleware.CheckContentType(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("rec.Code = %v, want: %v", rec.Code, tt.wantStatusCode)
			}
			if nextCalled != tt.wantNextCalled {
				t.Errorf("nextCalled = %v, want: %v", nextCalled, tt.wantNextCalled)
			}
		})
	}
}
