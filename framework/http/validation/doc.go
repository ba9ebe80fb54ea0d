// Package validation provides Laravel-style input validation for request
// payloads.
//
// Rules are expressed as pipe-separated strings on a map of field names.
// Fields are checked in sorted order; the first failing rule of a field
// stops the remaining rules for that field.
//
//	v := validation.Make(map[string]string{
//	    "curp": body.CURP,
//	}, validation.Rules{
//	    "curp": "required|max:64",
//	})
//
//	if v.Fails() {
//	    res.ValidationError(v.Errors()) // 422 {"errors": {"curp": ["..."]}}
//	}
//
// # Available Rules
//
//   - required  field must be present and non-empty
//   - max:n     at most n UTF-8 characters
//
// An unknown rule name fails the field, so typos in rule strings surface in
// tests instead of silently passing.
package validation
