package validation

type StubValidator struct {
	ValidateStructFunc func(s any) map[string]string
}

var _ Validator = &StubValidator{}

func (v *StubValidator) ValidateStruct(s any) map[string]string {
	if v.ValidateStructFunc == nil {
		return nil
	}
	return v.ValidateStructFunc(s)
}
