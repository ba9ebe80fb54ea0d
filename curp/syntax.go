package curp

import "fmt"

// SuccessMessage is the single message Validate returns for a valid CURP.
const SuccessMessage = "Sintaxis Correcto"

const (
	msgLength       = "Error de sintaxis: La CURP debe tener exactamente 18 caracteres."
	msgFirstName    = "Error de sintaxis: Debe contener Primera letra y vocal del primer apellido."
	msgSecondName   = "Error de sintaxis: Debe contener primera letra del apellido materno."
	msgGivenName    = "Error de sintaxis: Debe contener primera letra del nombre ."
	msgYear         = "Error de sintaxis: Debe estar entre 1950 y 2023."
	msgMonth        = "Error de sintaxis: Debe ser un mes valido."
	msgDayFormat    = "Error de sintaxis: Debe estar entre 01 y %d para el mes %s."
	msgSex          = "Error de sintaxis: Debe ser 'H' (Hombre) o 'M' (Mujer)."
	msgState        = "Error de sintaxis: Código de estado no válido."
	msgLetter       = "Error de sintaxis: Debe ser una letra."
	msgAlphaNumeric = "Error de sintaxis: Debe ser un dígito o una letra."
)

// ── Grammar ──────────────────────────────────────────────────────────────────

type ruleName int

const (
	ruleUpper    ruleName = iota // [A-Z]+
	ruleAlphaNum                 // [A-Z0-9]+
	ruleYear                     // 00-23 or 50-99
	ruleMonth                    // 01-12
	ruleDay                      // 01-MaxDay(month, year)
	ruleSex                      // H | M
	ruleState                    // stateCodes
)

type rule struct {
	field   int
	name    ruleName
	message string
}

// grammar lists one rule per field, in field order.
var grammar = [...]rule{
	{fieldFirstSurname, ruleUpper, msgFirstName},
	{fieldSecondSurname, ruleUpper, msgSecondName},
	{fieldGivenName, ruleUpper, msgGivenName},
	{fieldBirthYear, ruleYear, msgYear},
	{fieldBirthMonth, ruleMonth, msgMonth},
	{fieldBirthDay, ruleDay, msgDayFormat},
	{fieldSex, ruleSex, msgSex},
	{fieldState, ruleState, msgState},
	{fieldFirstConsonant, ruleUpper, msgLetter},
	{fieldSecondConsonant, ruleUpper, msgLetter},
	{fieldNameConsonant, ruleUpper, msgLetter},
	{fieldHomonymy, ruleAlphaNum, msgAlphaNumeric},
	{fieldVerifier, ruleAlphaNum, msgAlphaNumeric},
}

// ── Validation ───────────────────────────────────────────────────────────────

// Check returns every rule s violates, in field order. A valid CURP yields
// an empty slice.
//
// Input that is not exactly 18 characters yields a single Structural
// violation and no field is checked. Otherwise every field is checked, so
// several violations may be reported together.
func Check(s string) []Violation {
	runes := []rune(s)
	if len(runes) != Length {
		return []Violation{{Kind: Structural, Message: msgLength}}
	}

	texts := make([]string, len(Fields))
	for i, f := range Fields {
		texts[i] = f.Slice(runes)
	}

	var out []Violation
	for _, r := range grammar {
		if v, ok := r.apply(texts); !ok {
			out = append(out, v)
		}
	}
	return out
}

// Validate returns the messages of every violated rule, or the single
// SuccessMessage when s is valid.
func Validate(s string) []string {
	violations := Check(s)
	if len(violations) == 0 {
		return []string{SuccessMessage}
	}
	return Messages(violations)
}

// IsValid reports whether messages is exactly the success sentinel.
func IsValid(messages []string) bool {
	return len(messages) == 1 && messages[0] == SuccessMessage
}

// apply returns true if the rule passes; otherwise it returns the violation.
func (r rule) apply(texts []string) (Violation, bool) {
	text := texts[r.field]
	fail := Violation{Field: Fields[r.field].Label, Kind: Grammar, Message: r.message}

	switch r.name {
	case ruleUpper:
		if !allOf(text, isUpper) {
			return fail, false
		}

	case ruleAlphaNum:
		if !allOf(text, isUpperOrDigit) {
			return fail, false
		}

	case ruleYear:
		y, ok := twoDigits(text)
		if !ok || !(y <= 23 || y >= 50) {
			fail.Kind = Range
			return fail, false
		}

	case ruleMonth:
		m, ok := twoDigits(text)
		if !ok || m < 1 || m > 12 {
			fail.Kind = Range
			return fail, false
		}

	case ruleDay:
		// A malformed month falls back to 31 days and a malformed year counts
		// as non-leap. Both are reported by their own rules.
		month, _ := twoDigits(texts[fieldBirthMonth])
		year, ok := twoDigits(texts[fieldBirthYear])
		if !ok {
			year = 1
		}
		last := MaxDay(month, year)
		d, ok := twoDigits(text)
		if !ok || d < 1 || d > last {
			fail.Kind = Range
			fail.Message = fmt.Sprintf(r.message, last, texts[fieldBirthMonth])
			return fail, false
		}

	case ruleSex:
		if text != "H" && text != "M" {
			return fail, false
		}

	case ruleState:
		if !IsStateCode(text) {
			return fail, false
		}
	}

	return Violation{}, true
}

// ── helpers ─────────────────────────────────────────────────────────────────

func allOf(s string, pred func(rune) bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

func isUpper(r rune) bool        { return r >= 'A' && r <= 'Z' }
func isDigit(r rune) bool        { return r >= '0' && r <= '9' }
func isUpperOrDigit(r rune) bool { return isUpper(r) || isDigit(r) }

// twoDigits parses exactly two ASCII digits. Signs and spaces are rejected.
func twoDigits(s string) (int, bool) {
	if len(s) != 2 || !isDigit(rune(s[0])) || !isDigit(rune(s[1])) {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}
