package curp

// stateCodes are the two-letter birth-state codes, NE meaning born abroad.
var stateCodes = [...]string{
	"AS", "BC", "BS", "CC", "CL", "CM", "CS", "CH", "DF", "DG", "GT",
	"GR", "HG", "JC", "MC", "MN", "MS", "NT", "NL", "OC", "PL", "QT",
	"QR", "SP", "SL", "SR", "TC", "TS", "TL", "VZ", "YN", "ZS", "NE",
}

var stateSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(stateCodes))
	for _, c := range stateCodes {
		m[c] = struct{}{}
	}
	return m
}()

// StateCodes returns a copy of the valid state codes in catalog order.
func StateCodes() []string {
	out := make([]string, len(stateCodes))
	copy(out, stateCodes[:])
	return out
}

// IsStateCode reports whether code is one of the valid state codes.
func IsStateCode(code string) bool {
	_, ok := stateSet[code]
	return ok
}

// fallbackMaxDay bounds the day when the month is outside 1-12.
const fallbackMaxDay = 31

var daysInMonth = map[int]int{
	1: 31, 3: 31, 4: 30, 5: 31, 6: 30,
	7: 31, 8: 31, 9: 30, 10: 31, 11: 30, 12: 31,
}

// MaxDay returns the last valid day for month in the two-digit year.
//
// February has 29 days when year%4 == 0. The rule is applied to the
// two-digit year as written, so 00 counts as a leap year. Months outside
// 1-12 fall back to 31.
func MaxDay(month, year int) int {
	if month == 2 {
		if year%4 == 0 {
			return 29
		}
		return 28
	}
	if d, ok := daysInMonth[month]; ok {
		return d
	}
	return fallbackMaxDay
}
