package model

import (
	"errors"
	"fmt"
)

var ErrInvalidFilter = errors.New("invalid search filter")

// SearchFilters is a structured filter query for word search. All fields are
// optional, but at least one must be set. Values are validated before any
// provider call is made.
type SearchFilters struct {
	LetterPattern string
	LettersMin    *int
	LettersMax    *int
	SyllablesMin  *int
	SyllablesMax  *int
	FrequencyMin  *float64
	FrequencyMax  *float64
}

func (f SearchFilters) IsZero() bool {
	return f.LetterPattern == "" &&
		f.LettersMin == nil && f.LettersMax == nil &&
		f.SyllablesMin == nil && f.SyllablesMax == nil &&
		f.FrequencyMin == nil && f.FrequencyMax == nil
}

func (f SearchFilters) Validate() error {
	if f.IsZero() {
		return fmt.Errorf("%w: no filters set", ErrInvalidFilter)
	}

	if err := validateCountRange("letters", f.LettersMin, f.LettersMax); err != nil {
		return err
	}
	if err := validateCountRange("syllables", f.SyllablesMin, f.SyllablesMax); err != nil {
		return err
	}

	if f.FrequencyMin != nil && (*f.FrequencyMin < 0 || *f.FrequencyMin > 10) {
		return fmt.Errorf("%w: frequencyMin must be within [0, 10]", ErrInvalidFilter)
	}
	if f.FrequencyMax != nil && (*f.FrequencyMax < 0 || *f.FrequencyMax > 10) {
		return fmt.Errorf("%w: frequencyMax must be within [0, 10]", ErrInvalidFilter)
	}
	if f.FrequencyMin != nil && f.FrequencyMax != nil && *f.FrequencyMin > *f.FrequencyMax {
		return fmt.Errorf("%w: frequencyMin exceeds frequencyMax", ErrInvalidFilter)
	}

	return nil
}

func validateCountRange(name string, min, max *int) error {
	if min != nil && *min < 1 {
		return fmt.Errorf("%w: %sMin must be at least 1", ErrInvalidFilter, name)
	}
	if max != nil && *max < 1 {
		return fmt.Errorf("%w: %sMax must be at least 1", ErrInvalidFilter, name)
	}
	if min != nil && max != nil && *min > *max {
		return fmt.Errorf("%w: %sMin exceeds %sMax", ErrInvalidFilter, name, name)
	}

	return nil
}
