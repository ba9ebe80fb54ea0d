package curp

// Kind classifies a Violation.
type Kind int

const (
	// Structural means the input is not 18 characters long. It is reported
	// alone: no field is checked.
	Structural Kind = iota
	// Grammar means a field does not match its character class or set.
	Grammar
	// Range means a numeric field is not two digits or is out of range.
	Range
)

func (k Kind) String() string {
	switch k {
	case Structural:
		return "structural"
	case Grammar:
		return "grammar"
	case Range:
		return "range"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name in JSON and YAML output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Violation is one failed rule. Field is empty for Structural violations.
type Violation struct {
	Field   Label  `json:"field,omitempty" yaml:"field,omitempty"`
	Kind    Kind   `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}

func (v Violation) Error() string { return v.Message }

// Messages returns the message of each violation, in order.
func Messages(violations []Violation) []string {
	out := make([]string, len(violations))
	for i, v := range violations {
		out[i] = v.Message
	}
	return out
}
