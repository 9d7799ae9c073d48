package model

import "time"

// Reason explains the outcome of validating one candidate.
type Reason string

const (
	// ReasonOK means the candidate is well formed and its checksum matches.
	ReasonOK Reason = "ok"
	// ReasonLength means the candidate is not exactly 9 bytes long.
	ReasonLength Reason = "length"
	// ReasonClassification means the first letter is not S, T, F or G.
	ReasonClassification Reason = "classification"
	// ReasonDigits means positions 1-7 are not all decimal digits.
	ReasonDigits Reason = "digits"
	// ReasonChecksum means the trailing letter does not match the computed one.
	ReasonChecksum Reason = "checksum"
)

// Validation is the result of checking a single candidate string.
type Validation struct {
	Candidate string `yaml:"candidate"`
	Valid     bool   `yaml:"valid"`
	Reason    Reason `yaml:"reason"`
	// Expected holds the computed checksum letter when the candidate is
	// structurally well formed, empty otherwise.
	Expected string `yaml:"expected,omitempty"`
}

// ReportKind tells which command produced a report.
type ReportKind string

const (
	// ReportGenerate is written by the generate command.
	ReportGenerate ReportKind = "generate"
	// ReportValidate is written by the validate command.
	ReportValidate ReportKind = "validate"
)

// ReportParams records the inputs of a generate run.
type ReportParams struct {
	BirthYear int       `yaml:"birth_year"`
	Residency Residency `yaml:"residency"`
	Count     int       `yaml:"count"`
	Workers   int       `yaml:"workers"`
	Seed      *uint64   `yaml:"seed,omitempty"`
}

// Report is a persisted record of a generate or validate run.
type Report struct {
	Kind        ReportKind    `yaml:"kind"`
	CreatedAt   time.Time     `yaml:"created_at"`
	Params      *ReportParams `yaml:"params,omitempty"`
	Numbers     []string      `yaml:"numbers,omitempty"`
	Validations []Validation  `yaml:"validations,omitempty"`
}

// InvalidCount returns how many validations failed.
func (r Report) InvalidCount() int {
	n := 0

	for _, v := range r.Validations {
		if !v.Valid {
			n++
		}
	}

	return n
}
