package model

import (
	"errors"

	"mlserve/internal/feature"
)

type StubClassifier struct {
	PredictFunc func(v feature.Vector) (int, error)
}

var _ Classifier = &StubClassifier{}

func (c *StubClassifier) Predict(v feature.Vector) (int, error) {
	if c.PredictFunc == nil {
		return 0, errors.New("Predict() not implemented by stub")
	}
	return c.PredictFunc(v)
}
