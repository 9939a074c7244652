package model_test

import (
	"errors"
	"strings"
	"testing"

	"mlserve/internal/model"
)

const goodColumns = `"feature_0", "feature_1", "feature_2", "feature_3", "feature_4",
"feature_5", "feature_6", "feature_7", "feature_8", "feature_9",
"feature_10", "feature_11", "feature_12", "feature_13", "feature_14",
"positive_predictors_sum", "main_interaction"`

const goodWeights = `0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1`

func TestDecodeArtifact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{
			name: "valid artifact",
			raw:  `{"columns": [` + goodColumns + `], "weights": [` + goodWeights + `], "intercept": 0.5}`,
		},
		{
			name:    "not json",
			raw:     "definitely not an artifact",
			wantErr: model.ErrBadArtifact,
		},
		{
			name:    "too few columns",
			raw:     `{"columns": ["feature_0"], "weights": [` + goodWeights + `], "intercept": 0}`,
			wantErr: model.ErrBadArtifact,
		},
		{
			name:    "too few weights",
			raw:     `{"columns": [` + goodColumns + `], "weights": [0.1], "intercept": 0}`,
			wantErr: model.ErrBadArtifact,
		},
		{
			name: "reordered columns are rejected",
			raw: `{"columns": [` + strings.Replace(goodColumns, `"feature_0", "feature_1"`, `"feature_1", "feature_0"`, 1) +
				`], "weights": [` + goodWeights + `], "intercept": 0}`,
			wantErr: model.ErrColumnMismatch,
		},
		{
			name: "renamed derived column is rejected",
			raw: `{"columns": [` + strings.Replace(goodColumns, `"main_interaction"`, `"interaction_main"`, 1) +
				`], "weights": [` + goodWeights + `], "intercept": 0}`,
			wantErr: model.ErrColumnMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			artifact, err := model.DecodeArtifact([]byte(tt.raw))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DecodeArtifact() error = %v, want: %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("DecodeArtifact() error = %v", err)
			}
			if artifact.Intercept != 0.5 {
				t.Errorf("artifact.Intercept = %v, want: 0.5", artifact.Intercept)
			}
		})
	}
}
