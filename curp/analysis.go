package curp

// Result is the outcome of analyzing one input.
type Result struct {
	Input      string      `json:"curp" yaml:"curp"`
	Tokens     []Token     `json:"tokens" yaml:"tokens"`
	Errors     []string    `json:"errors" yaml:"errors"`
	Violations []Violation `json:"violations" yaml:"violations"`
}

// IsValid reports whether the analysis found no violations.
func (r Result) IsValid() bool { return IsValid(r.Errors) }

// Analyze tokenizes and validates s. Tokens are produced even when s is
// malformed. Violations is empty, never nil, for a valid CURP.
func Analyze(s string) Result {
	violations := Check(s)
	if violations == nil {
		violations = []Violation{}
	}
	errs := []string{SuccessMessage}
	if len(violations) > 0 {
		errs = Messages(violations)
	}
	return Result{
		Input:      s,
		Tokens:     Tokenize(s),
		Errors:     errs,
		Violations: violations,
	}
}
