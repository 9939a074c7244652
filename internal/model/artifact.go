package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"mlserve/internal/feature"
)

// The two derived columns the artifact was trained with, appended after
// the raw features.
const (
	colPositivePredictorsSum = "positive_predictors_sum"
	colMainInteraction       = "main_interaction"

	columnCount = feature.FieldCount + 2
)

var (
	ErrBadArtifact    = errors.New("model: malformed artifact")
	ErrColumnMismatch = errors.New("model: artifact column layout mismatch")
)

// Artifact is the serialized form of the trained classifier: a weight per
// column plus an intercept.
type Artifact struct {
	Columns   []string  `json:"columns"`
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

// expectedColumns is the exact input layout the artifact was trained
// with. A deviating layout would change predictions silently, so decoding
// refuses it outright.
func expectedColumns() [columnCount]string {
	var cols [columnCount]string
	names := feature.FieldNames()
	copy(cols[:], names[:])
	cols[feature.FieldCount] = colPositivePredictorsSum
	cols[feature.FieldCount+1] = colMainInteraction
	return cols
}

// DecodeArtifact parses and validates raw artifact bytes.
func DecodeArtifact(raw []byte) (*Artifact, error) {
	var artifact Artifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArtifact, err)
	}

	if got := len(artifact.Columns); got != columnCount {
		return nil, fmt.Errorf("%w: expected %d columns, got %d", ErrBadArtifact, columnCount, got)
	}
	if got := len(artifact.Weights); got != columnCount {
		return nil, fmt.Errorf("%w: expected %d weights, got %d", ErrBadArtifact, columnCount, got)
	}

	for i, col := range expectedColumns() {
		if artifact.Columns[i] != col {
			return nil, fmt.Errorf("%w: column %d is %q, expected %q", ErrColumnMismatch, i, artifact.Columns[i], col)
		}
	}

	for i, w := range artifact.Weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: weight %d is not finite", ErrBadArtifact, i)
		}
	}
	if math.IsNaN(artifact.Intercept) || math.IsInf(artifact.Intercept, 0) {
		return nil, fmt.Errorf("%w: intercept is not finite", ErrBadArtifact)
	}

	return &artifact, nil
}
