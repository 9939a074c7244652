package feature

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"mlserve/internal/platform/validation"
)

var ErrMalformedBody = errors.New("feature schema: body is not a JSON object")

// Schema validates raw request payloads into feature Vectors.
//
// Validation runs in two stages: each present field is coerced to a float
// (collecting type errors), then the validator reports the missing fields.
// Every offending field ends up in the error map, not just the first one.
type Schema struct {
	validator validation.Validator
}

func NewSchema(validator validation.Validator) *Schema {
	return &Schema{validator: validator}
}

// payload mirrors Vector with optional fields so the validator can tell a
// missing field apart from a zero value.
type payload struct {
	Feature0  *float64 `json:"feature_0" validate:"required"`
	Feature1  *float64 `json:"feature_1" validate:"required"`
	Feature2  *float64 `json:"feature_2" validate:"required"`
	Feature3  *float64 `json:"feature_3" validate:"required"`
	Feature4  *float64 `json:"feature_4" validate:"required"`
	Feature5  *float64 `json:"feature_5" validate:"required"`
	Feature6  *float64 `json:"feature_6" validate:"required"`
	Feature7  *float64 `json:"feature_7" validate:"required"`
	Feature8  *float64 `json:"feature_8" validate:"required"`
	Feature9  *float64 `json:"feature_9" validate:"required"`
	Feature10 *float64 `json:"feature_10" validate:"required"`
	Feature11 *float64 `json:"feature_11" validate:"required"`
	Feature12 *float64 `json:"feature_12" validate:"required"`
	Feature13 *float64 `json:"feature_13" validate:"required"`
	Feature14 *float64 `json:"feature_14" validate:"required"`
}

// Parse validates body and produces a typed Vector.
//
// A non-nil error means the body was not a JSON object at all. A non-empty
// map enumerates the structural problems per field: "is required" for
// missing fields, "must be a number" for mistyped ones. Unknown extra
// fields are ignored.
func (s *Schema) Parse(body []byte) (Vector, map[string]string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return Vector{}, nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	var p payload
	dests := [FieldCount]**float64{
		&p.Feature0, &p.Feature1, &p.Feature2, &p.Feature3, &p.Feature4,
		&p.Feature5, &p.Feature6, &p.Feature7, &p.Feature8, &p.Feature9,
		&p.Feature10, &p.Feature11, &p.Feature12, &p.Feature13, &p.Feature14,
	}

	typeErrs := make(map[string]string)
	for i, name := range FieldNames() {
		rawVal, ok := raw[name]
		if !ok {
			continue
		}

		val, err := coerceFloat(rawVal)
		if err != nil {
			typeErrs[name] = fmt.Sprintf("%s must be a number", name)
			continue
		}
		*dests[i] = &val
	}

	errs := s.validator.ValidateStruct(p)
	if errs == nil && len(typeErrs) > 0 {
		errs = make(map[string]string, len(typeErrs))
	}
	// A mistyped field was present, so the type error wins over the
	// validator's missing-field message for the same key.
	for name, msg := range typeErrs {
		errs[name] = msg
	}

	if len(errs) > 0 {
		return Vector{}, errs, nil
	}

	vec := Vector{
		Feature0:  *p.Feature0,
		Feature1:  *p.Feature1,
		Feature2:  *p.Feature2,
		Feature3:  *p.Feature3,
		Feature4:  *p.Feature4,
		Feature5:  *p.Feature5,
		Feature6:  *p.Feature6,
		Feature7:  *p.Feature7,
		Feature8:  *p.Feature8,
		Feature9:  *p.Feature9,
		Feature10: *p.Feature10,
		Feature11: *p.Feature11,
		Feature12: *p.Feature12,
		Feature13: *p.Feature13,
		Feature14: *p.Feature14,
	}
	return vec, nil, nil
}

// coerceFloat accepts JSON numbers and numeric strings. Everything else
// (booleans, nulls, arrays, objects, non-numeric strings) is a type error.
func coerceFloat(raw json.RawMessage) (float64, error) {
	var val any
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	if err := dec.Decode(&val); err != nil {
		return 0, err
	}

	switch v := val.(type) {
	case json.Number:
		return strconv.ParseFloat(v.String(), 64)
	case string:
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return 0, fmt.Errorf("value %s is not numeric", string(raw))
	}
}
