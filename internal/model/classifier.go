package model

import (
	"errors"
	"fmt"
	"math"

	"mlserve/internal/feature"
)

var ErrInvocation = errors.New("model: scoring failed")

// Classifier produces a binary prediction for a validated feature vector.
type Classifier interface {
	Predict(v feature.Vector) (int, error)
}

// LinearClassifier scores a feature vector against the weights of the
// trained artifact. The 0.5 threshold on the sigmoid output is equivalent
// to the sign of the raw score. Safe for unsynchronized concurrent use:
// the artifact is never mutated after construction.
type LinearClassifier struct {
	artifact *Artifact
}

var _ Classifier = (*LinearClassifier)(nil)

func NewLinearClassifier(artifact *Artifact) *LinearClassifier {
	return &LinearClassifier{artifact: artifact}
}

func (c *LinearClassifier) Predict(v feature.Vector) (int, error) {
	row := assembleRow(v)

	score := c.artifact.Intercept
	for i, w := range c.artifact.Weights {
		score += w * row[i]
	}

	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, fmt.Errorf("%w: non-finite score", ErrInvocation)
	}

	if score >= 0 {
		return 1, nil
	}
	return 0, nil
}

// assembleRow builds the 17-value row in the exact column order the
// artifact was trained with: the 15 raw features followed by the two
// derived ones.
func assembleRow(v feature.Vector) [columnCount]float64 {
	var row [columnCount]float64
	vals := v.Values()
	copy(row[:], vals[:])
	row[feature.FieldCount] = v.Feature3 + v.Feature7 + v.Feature12
	row[feature.FieldCount+1] = v.Feature3 * v.Feature9
	return row
}
