package curp

// Token is one labeled field extracted from an input string.
type Token struct {
	Label Label  `json:"tipo" yaml:"tipo"`
	Text  string `json:"token" yaml:"token"`
}

// Tokenize splits s into the 13 CURP fields in offset order.
//
// It performs no length validation: short input yields truncated or empty
// texts and characters past the 18th are ignored.
func Tokenize(s string) []Token {
	runes := []rune(s)
	tokens := make([]Token, len(Fields))
	for i, f := range Fields {
		tokens[i] = Token{Label: f.Label, Text: f.Slice(runes)}
	}
	return tokens
}
