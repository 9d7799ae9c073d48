// Package domain contains the identity-number codec and the workflows built on it.
package domain

import (
	"errors"
	"fmt"

	"nric.dev/pkg/nric/internal/adapter"
	m "nric.dev/pkg/nric/internal/model"
)

const (
	// Length is the length of every identity number in bytes.
	Length = 9
	// DigitCount is the number of digits between the two letters.
	DigitCount = 7

	// eraBoundary is the first birth year of the T and G classes.
	eraBoundary = 2000
)

var (
	// ErrInvalidClassification is returned for a leading letter outside S, T, F, G.
	ErrInvalidClassification = errors.New("invalid classification letter")
	// ErrInvalidDigits is returned when the digit part is not 7 decimal digits.
	ErrInvalidDigits = errors.New("digits must be exactly 7 decimal digits")
	// ErrInvalidNRIC is returned by Parse for any candidate that fails validation.
	ErrInvalidNRIC = errors.New("invalid identity number")
)

// weights is position aligned with the 7 digits.
var weights = [DigitCount]int{2, 7, 6, 5, 4, 3, 2}

// classification is indexed by [non-citizen][born 2000 or later].
var classification = [2][2]m.Class{
	{m.ClassS, m.ClassT},
	{m.ClassF, m.ClassG},
}

type checksumTable struct {
	offset  int
	letters [11]byte
}

var (
	citizenTable    = checksumTable{offset: 0, letters: [11]byte{'J', 'Z', 'I', 'H', 'G', 'F', 'E', 'D', 'C', 'B', 'A'}}
	nonCitizenTable = checksumTable{offset: 4, letters: [11]byte{'X', 'W', 'U', 'T', 'R', 'Q', 'P', 'N', 'M', 'L', 'K'}}
)

var checksumTables = map[m.Class]*checksumTable{
	m.ClassS: &citizenTable,
	m.ClassT: &citizenTable,
	m.ClassF: &nonCitizenTable,
	m.ClassG: &nonCitizenTable,
}

// NRIC is a well-formed identity number. The zero value is empty and not valid.
type NRIC struct {
	value string
}

// String returns the 9-character number.
func (n NRIC) String() string {
	return n.value
}

// IsZero reports whether n is the zero value.
func (n NRIC) IsZero() bool {
	return n.value == ""
}

// Class returns the leading classification letter.
func (n NRIC) Class() m.Class {
	if n.IsZero() {
		return 0
	}

	return m.Class(n.value[0])
}

// Digits returns the 7-digit body.
func (n NRIC) Digits() string {
	if n.IsZero() {
		return ""
	}

	return n.value[1 : 1+DigitCount]
}

// Checksum returns the trailing checksum letter.
func (n NRIC) Checksum() byte {
	if n.IsZero() {
		return 0
	}

	return n.value[Length-1]
}

// Classify returns the classification letter for a birth year and residency.
func Classify(birthYear int, isCitizen bool) m.Class {
	row, col := 0, 0
	if !isCitizen {
		row = 1
	}

	if birthYear >= eraBoundary {
		col = 1
	}

	return classification[row][col]
}

// Generate builds a new identity number, drawing exactly 7 digits from src.
// It panics if src returns a value outside 0-9.
func Generate(birthYear int, isCitizen bool, src adapter.DigitSource) NRIC {
	class := Classify(birthYear, isCitizen)

	buf := make([]byte, Length)
	buf[0] = byte(class)

	for i := range DigitCount {
		d := src.NextDigit()
		if d < 0 || d > 9 {
			panic(fmt.Sprintf("generate: digit source returned %d", d))
		}

		buf[1+i] = byte('0' + d)
	}

	buf[Length-1] = checksumLetter(class, string(buf[1:1+DigitCount]))

	return NRIC{value: string(buf)}
}

// Checksum computes the checksum letter for user supplied input.
func Checksum(class m.Class, digits string) (byte, error) {
	if !class.Known() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClassification, class.String())
	}

	if !isDigits(digits) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDigits, digits)
	}

	return checksumLetter(class, digits), nil
}

// checksumLetter expects a known class and 7 decimal digits. An unknown class
// can only come from a broken classification table and panics.
func checksumLetter(class m.Class, digits string) byte {
	table, ok := checksumTables[class]
	if !ok {
		panic(fmt.Sprintf("checksum: invalid classification letter %q", class.String()))
	}

	sum := table.offset
	for i := range DigitCount {
		sum += int(digits[i]-'0') * weights[i]
	}

	return table.letters[sum%11]
}

// Inspect validates candidate and explains the outcome. It never panics.
func Inspect(candidate string) m.Validation {
	result := m.Validation{Candidate: candidate}

	if len(candidate) != Length {
		result.Reason = m.ReasonLength
		return result
	}

	class := m.Class(candidate[0])
	if !class.Known() {
		result.Reason = m.ReasonClassification
		return result
	}

	digits := candidate[1 : 1+DigitCount]
	if !isDigits(digits) {
		result.Reason = m.ReasonDigits
		return result
	}

	expected := checksumLetter(class, digits)
	result.Expected = string(rune(expected))

	if candidate[Length-1] != expected {
		result.Reason = m.ReasonChecksum
		return result
	}

	result.Valid = true
	result.Reason = m.ReasonOK

	return result
}

// IsValid reports whether candidate is a well-formed identity number with a
// matching checksum letter. Matching is case-sensitive.
func IsValid(candidate string) bool {
	return Inspect(candidate).Valid
}

// Parse returns candidate as an NRIC, or an error wrapping ErrInvalidNRIC.
func Parse(candidate string) (NRIC, error) {
	result := Inspect(candidate)
	if !result.Valid {
		return NRIC{}, fmt.Errorf("%w %q: %s", ErrInvalidNRIC, candidate, result.Reason)
	}

	return NRIC{value: candidate}, nil
}

// MustParse is like Parse but panics on invalid input. Use it for constants.
func MustParse(candidate string) NRIC {
	n, err := Parse(candidate)
	if err != nil {
		panic(err)
	}

	return n
}

func isDigits(s string) bool {
	if len(s) != DigitCount {
		return false
	}

	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
