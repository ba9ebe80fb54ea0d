package curp

// Length is the number of characters in a well-formed CURP.
const Length = 18

// Label names a CURP field. The values are the display names shown to users.
type Label string

const (
	LabelFirstSurname    Label = "Apellido Paterno"
	LabelSecondSurname   Label = "Apellido Materno"
	LabelGivenName       Label = "Nombre"
	LabelBirthYear       Label = "Año de Nacimiento"
	LabelBirthMonth      Label = "Mes de Nacimiento"
	LabelBirthDay        Label = "Día de Nacimiento"
	LabelSex             Label = "Sexo"
	LabelState           Label = "Estado"
	LabelFirstConsonant  Label = "Consonante Paterno"
	LabelSecondConsonant Label = "Consonante Materno"
	LabelNameConsonant   Label = "Consonante Nombre"
	LabelHomonymy        Label = "Número asignado con año de nacimiento"
	LabelVerifier        Label = "Código verificador"
)

// Field is a fixed-position slice of a CURP: characters [Start, End).
type Field struct {
	Label Label
	Start int
	End   int
}

// Len returns the number of characters the field spans.
func (f Field) Len() int { return f.End - f.Start }

// Slice extracts the field from runes. Offsets past the end yield a
// truncated or empty string.
func (f Field) Slice(runes []rune) string {
	start, end := f.Start, f.End
	if start > len(runes) {
		start = len(runes)
	}
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[start:end])
}

// Fields partitions [0, Length) in field order.
var Fields = [...]Field{
	{LabelFirstSurname, 0, 2},
	{LabelSecondSurname, 2, 3},
	{LabelGivenName, 3, 4},
	{LabelBirthYear, 4, 6},
	{LabelBirthMonth, 6, 8},
	{LabelBirthDay, 8, 10},
	{LabelSex, 10, 11},
	{LabelState, 11, 13},
	{LabelFirstConsonant, 13, 14},
	{LabelSecondConsonant, 14, 15},
	{LabelNameConsonant, 15, 16},
	{LabelHomonymy, 16, 17},
	{LabelVerifier, 17, 18},
}

// field indexes into Fields, in the same order.
const (
	fieldFirstSurname = iota
	fieldSecondSurname
	fieldGivenName
	fieldBirthYear
	fieldBirthMonth
	fieldBirthDay
	fieldSex
	fieldState
	fieldFirstConsonant
	fieldSecondConsonant
	fieldNameConsonant
	fieldHomonymy
	fieldVerifier
)
