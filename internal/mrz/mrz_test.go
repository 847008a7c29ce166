package mrz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Specimen zones for the ICAO test state UTO.
const (
	passportL1 = "P<UTOERIKSSON<<ANNA<MARIA<<<<<<<<<<<<<<<<<<<"
	passportL2 = "L898902C36UTO7408122F1204159ZE184226B<<<<<10"

	cardAL1 = "I<UTOD231458907<<<<<<<<<<<<<<<"
	cardAL2 = "7408122F1204159UTO<<<<<<<<<<<6"
	cardAL3 = "ERIKSSON<<ANNA<MARIA<<<<<<<<<<"

	cardBL1 = "I<UTOERIKSSON<<ANNA<MARIA<<<<<<<<<<<"
	cardBL2 = "D231458907UTO7408122F1204159<<<<<<<6"
)

func TestScanFormatA(t *testing.T) {
	text := strings.Join([]string{
		"REPUBLIC OF UTOPIA",
		"PASSPORT",
		passportL1,
		// recognition output often splits the zone with stray spaces
		"L898902C36UTO7408122F 1204159ZE184226B<<<<<10",
	}, "\n")

	r, ok := Scan(text)
	require.True(t, ok)

	assert.Equal(t, "A", r.Format)
	assert.Equal(t, "P", r.DocumentType)
	assert.Equal(t, "UTO", r.CountryCode)
	assert.Equal(t, "ERIKSSON", r.Surname)
	assert.Equal(t, "ANNA MARIA", r.GivenNames)
	assert.Equal(t, "L898902C3", r.DocumentNumber)
	assert.Equal(t, "UTO", r.Nationality)
	assert.Equal(t, "740812", r.BirthDate)
	assert.Equal(t, "F", r.Sex)
	assert.Equal(t, "120415", r.ExpiryDate)
	assert.Equal(t, "ZE184226B", r.PersonalNumber)
	assert.True(t, r.ChecksumValid)
	assert.Equal(t, []string{passportL1, passportL2}, r.RawLines)
}

func TestScanFormatB(t *testing.T) {
	text := strings.Join([]string{"IDENTITY CARD", cardAL1, cardAL2, cardAL3}, "\n")

	r, ok := Scan(text)
	require.True(t, ok)

	assert.Equal(t, "B", r.Format)
	assert.Equal(t, "I", r.DocumentType)
	assert.Equal(t, "D23145890", r.DocumentNumber)
	assert.Equal(t, "ERIKSSON", r.Surname)
	assert.Equal(t, "ANNA MARIA", r.GivenNames)
	assert.Equal(t, "740812", r.BirthDate)
	assert.Equal(t, "120415", r.ExpiryDate)
	assert.Equal(t, "UTO", r.Nationality)
	assert.True(t, r.ChecksumValid)
	assert.Len(t, r.RawLines, 3)
}

func TestScanFormatC(t *testing.T) {
	text := cardBL1 + "\n" + cardBL2

	r, ok := Scan(text)
	require.True(t, ok)

	assert.Equal(t, "C", r.Format)
	assert.Equal(t, "D23145890", r.DocumentNumber)
	assert.Equal(t, "ERIKSSON", r.Surname)
	assert.Equal(t, "740812", r.BirthDate)
	assert.Equal(t, "F", r.Sex)
	assert.True(t, r.ChecksumValid)
}

func TestScanRejectsMutatedCheckDigit(t *testing.T) {
	// one corrupted character in the document number must kill the match
	mutated := strings.Replace(passportL2, "L898902C3", "L898902C8", 1)
	_, ok := Scan(passportL1 + "\n" + mutated)
	assert.False(t, ok)
}

func TestScanNoZone(t *testing.T) {
	_, ok := Scan("quarterly report\nrevenue up three percent\nsigned by the board")
	assert.False(t, ok)
}

func TestScanSkipsNoiseBeforeZone(t *testing.T) {
	// a 44-char line of plain text must not be mistaken for a zone line
	noise := strings.Repeat("X", 44)
	text := noise + "\n" + passportL1 + "\n" + passportL2
	r, ok := Scan(text)
	require.True(t, ok)
	assert.Equal(t, "A", r.Format)
}

func TestCheckDigit(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"520727", 3},
		{"740812", 2},
		{"120415", 9},
		{"L898902C3", 6},
		{"<<<<<<", 0},
		{"ABC", 5},
		{"bad input", -1},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, CheckDigit(c.in), "input %q", c.in)
	}
}
