// Package mrz finds and parses the machine readable zone of identity
// documents in recognized text. The scan is a heuristic pattern search over
// recognition output, not a layout-aware crop: missing a valid zone is
// acceptable, accepting a bogus one is not, so every candidate must pass its
// format's check digits first.
package mrz

import "strings"

// Result holds the fields parsed from a machine readable zone.
type Result struct {
	Format         string // "A" (2×44), "B" (3×30), "C" (2×36)
	DocumentType   string
	CountryCode    string
	Surname        string
	GivenNames     string
	DocumentNumber string
	Nationality    string
	BirthDate      string // YYMMDD as printed
	Sex            string
	ExpiryDate     string // YYMMDD as printed
	PersonalNumber string
	ChecksumValid  bool
	RawLines       []string
}

// Scan slides a window over the candidate lines looking for the three
// fixed-width signatures and returns the first candidate whose mandatory
// check digits (document number, birth date, expiry date) verify.
// ok=false when no valid zone is present.
func Scan(text string) (Result, bool) {
	lines := CandidateLines(text)
	for i := range lines {
		if i+1 < len(lines) && len(lines[i]) == 44 && len(lines[i+1]) == 44 {
			if r, ok := parseFormatA(lines[i], lines[i+1]); ok {
				return r, true
			}
		}
		if i+2 < len(lines) && len(lines[i]) == 30 && len(lines[i+1]) == 30 && len(lines[i+2]) == 30 {
			if r, ok := parseFormatB(lines[i], lines[i+1], lines[i+2]); ok {
				return r, true
			}
		}
		if i+1 < len(lines) && len(lines[i]) == 36 && len(lines[i+1]) == 36 {
			if r, ok := parseFormatC(lines[i], lines[i+1]); ok {
				return r, true
			}
		}
	}
	return Result{}, false
}

// CandidateLines prepares recognized text for the window scan: whitespace
// inside a line is stripped (recognition output often splits the zone with
// spaces) and letters are uppercased. Line positions are preserved so
// adjacency stays meaningful.
func CandidateLines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, len(raw))
	for i, ln := range raw {
		out[i] = strings.ToUpper(strings.Join(strings.Fields(ln), ""))
	}
	return out
}

// cleanField trims filler and turns interior fillers into spaces.
func cleanField(s string) string {
	s = strings.Trim(s, "<")
	return strings.ReplaceAll(s, "<", " ")
}

func sexField(c byte) string {
	if c == '<' {
		return ""
	}
	return string(c)
}

// splitNames splits the name field at the double filler into surname and
// given names.
func splitNames(s string) (surname, given string) {
	s = strings.TrimRight(s, "<")
	parts := strings.SplitN(s, "<<", 2)
	surname = strings.TrimSpace(strings.ReplaceAll(parts[0], "<", " "))
	if len(parts) == 2 {
		given = strings.TrimSpace(strings.ReplaceAll(parts[1], "<", " "))
	}
	return surname, given
}
