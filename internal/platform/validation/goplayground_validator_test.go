package validation_test

import (
	"reflect"
	"testing"

	"mlserve/internal/platform/validation"
)

func TestPlaygroundValidator_ValidateStruct(t *testing.T) {
	t.Parallel()

	type input struct {
		First  *float64 `json:"first" validate:"required"`
		Second *float64 `json:"second" validate:"required"`
	}

	one := 1.0
	zero := 0.0

	tests := []struct {
		name string
		in   input
		want map[string]string
	}{
		{
			name: "all fields set",
			in:   input{First: &one, Second: &zero},
			want: nil,
		},
		{
			name: "zero value passes required on pointer fields",
			in:   input{First: &zero, Second: &zero},
			want: nil,
		},
		{
			name: "missing fields use json names",
			in:   input{},
			want: map[string]string{
				"first":  "first is required",
				"second": "second is required",
			},
		},
	}

	validator := validation.NewPlaygroundValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := validator.ValidateStruct(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ValidateStruct() = %v, want: %v", got, tt.want)
			}
		})
	}
}
