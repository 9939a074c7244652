package prediction_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mlserve/internal/feature"
	"mlserve/internal/pkg/web"
	"mlserve/internal/platform/validation"
	"mlserve/internal/prediction"
)

const maxBodyBytes = 1 << 16

const validPayload = `{
	"feature_0": -0.1, "feature_1": 1.2, "feature_2": -0.5,
	"feature_3": 0.8, "feature_4": -2.1, "feature_5": 0.3,
	"feature_6": 1.1, "feature_7": -0.0, "feature_8": 0.9,
	"feature_9": 4.4, "feature_10": -2.2, "feature_11": -2.1,
	"feature_12": -2.4, "feature_13": 2.4, "feature_14": 1.1
}`

func TestHandler_Predict(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 10, 18, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		body           string
		svc            *prediction.StubService
		wantStatusCode int
		wantPrediction int
		wantErrFields  []string
		wantSvcCalls   int
	}{
		{
			name: "valid payload is scored and logged",
			body: validPayload,
			svc: &prediction.StubService{
				PredictFunc: func(_ context.Context, vec feature.Vector) (prediction.LogEntry, error) {
					return prediction.LogEntry{ID: 1, Timestamp: now, Vector: vec, Prediction: 1}, nil
				},
			},
			wantStatusCode: http.StatusOK,
			wantPrediction: 1,
			wantSvcCalls:   1,
		},
		{
			name:           "missing field never reaches the service",
			body:           `{"feature_0": 1.0}`,
			svc:            &prediction.StubService{},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantErrFields: []string{
				"feature_1", "feature_2", "feature_3", "feature_4",
				"feature_5", "feature_6", "feature_7", "feature_8",
				"feature_9", "feature_10", "feature_11", "feature_12",
				"feature_13", "feature_14",
			},
		},
		{
			name:           "non-numeric field never reaches the service",
			body:           strings.Replace(validPayload, `"feature_4": -2.1`, `"feature_4": "not a number"`, 1),
			svc:            &prediction.StubService{},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantErrFields:  []string{"feature_4"},
		},
		{
			name:           "malformed body",
			body:           "{",
			svc:            &prediction.StubService{},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantErrFields:  []string{"body"},
		},
		{
			name: "service failure is an opaque server error",
			body: validPayload,
			svc: &prediction.StubService{
				PredictFunc: func(_ context.Context, _ feature.Vector) (prediction.LogEntry, error) {
					return prediction.LogEntry{}, errors.New("insert failed")
				},
			},
			wantStatusCode: http.StatusInternalServerError,
			wantSvcCalls:   1,
		},
	}

	schema := feature.NewSchema(validation.NewPlaygroundValidator())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svcCalls := 0
			svc := &prediction.StubService{PredictFunc: func(ctx context.Context, vec feature.Vector) (prediction.LogEntry, error) {
				svcCalls++
				if tt.svc.PredictFunc == nil {
					t.Fatal("service was called for an invalid payload")
				}
				return tt.svc.PredictFunc(ctx, vec)
			}}

			h := prediction.NewHandler(svc, schema, maxBodyBytes)

			req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(tt.body))
			req.Header.Set(web.HeaderContentType, web.MimeJSON)
			rec := httptest.NewRecorder()

			h.Predict(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.wantStatusCode {
				t.Fatalf("res.StatusCode = %v, want: %v", res.StatusCode, tt.wantStatusCode)
			}

			if svcCalls != tt.wantSvcCalls {
				t.Errorf("service calls = %d, want: %d", svcCalls, tt.wantSvcCalls)
			}

			switch {
			case tt.wantStatusCode == http.StatusOK:
				var payload prediction.PredictResponse
				if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if payload.Prediction != tt.wantPrediction {
					t.Errorf("payload.Prediction = %d, want: %d", payload.Prediction, tt.wantPrediction)
				}
			case len(tt.wantErrFields) > 0:
				var payload web.ErrorResponse
				if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
					t.Fatalf("failed to decode error response: %v", err)
				}
				if len(payload.Errors) != len(tt.wantErrFields) {
					t.Fatalf("payload.Errors = %v, want fields: %v", payload.Errors, tt.wantErrFields)
				}
				for _, field := range tt.wantErrFields {
					if _, ok := payload.Errors[field]; !ok {
						t.Errorf("payload.Errors missing field %q: %v", field, payload.Errors)
					}
				}
			}
		})
	}
}

func TestHandler_PredictEchoesSubmittedVector(t *testing.T) {
	t.Parallel()

	want := feature.Vector{
		Feature0: -0.1, Feature1: 1.2, Feature2: -0.5,
		Feature3: 0.8, Feature4: -2.1, Feature5: 0.3,
		Feature6: 1.1, Feature7: -0.0, Feature8: 0.9,
		Feature9: 4.4, Feature10: -2.2, Feature11: -2.1,
		Feature12: -2.4, Feature13: 2.4, Feature14: 1.1,
	}

	var got feature.Vector
	svc := &prediction.StubService{
		PredictFunc: func(_ context.Context, vec feature.Vector) (prediction.LogEntry, error) {
			got = vec
			return prediction.LogEntry{ID: 1, Vector: vec}, nil
		},
	}

	schema := feature.NewSchema(validation.NewPlaygroundValidator())
	h := prediction.NewHandler(svc, schema, maxBodyBytes)

	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(validPayload))
	req.Header.Set(web.HeaderContentType, web.MimeJSON)
	rec := httptest.NewRecorder()

	h.Predict(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("rec.Code = %v, want: %v", rec.Code, http.StatusOK)
	}

	if got != want {
		t.Errorf("service received vector %+v, want: %+v", got, want)
	}
}
