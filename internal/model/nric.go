// Package model defines the data structures shared by the nric tool.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// Class is the leading letter of an identity number. It encodes residency
// status and birth-year era.
type Class byte

const (
	// ClassS is a citizen born before 2000.
	ClassS Class = 'S'
	// ClassT is a citizen born in 2000 or later.
	ClassT Class = 'T'
	// ClassF is a non-citizen registered before 2000.
	ClassF Class = 'F'
	// ClassG is a non-citizen registered in 2000 or later.
	ClassG Class = 'G'
)

// Classes lists every valid classification letter.
var Classes = []Class{ClassS, ClassT, ClassF, ClassG}

// String returns the letter as a one-character string.
func (c Class) String() string {
	return string(rune(c))
}

// Known reports whether c is one of S, T, F or G.
func (c Class) Known() bool {
	switch c {
	case ClassS, ClassT, ClassF, ClassG:
		return true
	}

	return false
}

// Residency is the holder's residency status.
type Residency string

const (
	// Citizen holders get S or T numbers.
	Citizen Residency = "citizen"
	// NonCitizen holders (permanent residents, foreigners) get F or G numbers.
	NonCitizen Residency = "non-citizen"
)

// ErrInvalidResidency is returned when a residency string is not recognised.
var ErrInvalidResidency = errors.New("invalid residency")

// IsCitizen reports whether r is Citizen.
func (r Residency) IsCitizen() bool {
	return r == Citizen
}

// ResidencyOf maps the citizenship flag to a Residency.
func ResidencyOf(isCitizen bool) Residency {
	if isCitizen {
		return Citizen
	}

	return NonCitizen
}

// ParseResidency accepts the canonical names plus a few common aliases.
func ParseResidency(value string) (Residency, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "citizen", "c":
		return Citizen, nil
	case "non-citizen", "noncitizen", "pr", "permanent-resident", "foreigner", "n":
		return NonCitizen, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidResidency, value)
}
