package mrz

var weights = [3]int{7, 3, 1}

// charValue implements the ICAO 9303 character mapping: digits map to
// themselves, letters to 10..35, filler '<' to 0.
func charValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	case c == '<':
		return 0, true
	}
	return 0, false
}

// CheckDigit computes the 7-3-1 weighted check digit for s, or -1 when s
// contains a character outside the zone alphabet.
func CheckDigit(s string) int {
	sum := 0
	for i := 0; i < len(s); i++ {
		v, ok := charValue(s[i])
		if !ok {
			return -1
		}
		sum += v * weights[i%3]
	}
	return sum % 10
}

func checkField(s string, digit byte) bool {
	want := CheckDigit(s)
	return want >= 0 && digit == byte('0'+want)
}

// zoneChars reports whether s consists only of the zone alphabet [0-9A-Z<].
func zoneChars(s string) bool {
	for i := 0; i < len(s); i++ {
		if _, ok := charValue(s[i]); !ok {
			return false
		}
	}
	return true
}
