// Package recipient holds the addressee data a letter is filled with and the
// rules for turning it into the lines of a postal address block.
package recipient

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrMissingField is returned by Validate for a blank required field.
var ErrMissingField = errors.New("recipient: required field is empty")

// Gender selects the salutation prefix of the address block.
type Gender int

const (
	Unspecified Gender = iota
	Female
	Male
)

// ParseGender maps a dataset gender code to a Gender. "F" and "M" (any case,
// also spelled out) are recognised; everything else, including an empty code,
// is Unspecified.
func ParseGender(code string) Gender {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "F", "FEMALE":
		return Female
	case "M", "MALE":
		return Male
	default:
		return Unspecified
	}
}

// Salutation returns the prefix placed before the recipient name.
func (g Gender) Salutation() string {
	switch g {
	case Female:
		return "Frau "
	case Male:
		return "Herr "
	default:
		return ""
	}
}

func (g Gender) String() string {
	switch g {
	case Female:
		return "female"
	case Male:
		return "male"
	default:
		return "unspecified"
	}
}

// Record is one row of the recipient dataset.
type Record struct {
	Name       string `json:"name"`
	Gender     string `json:"gender"`
	Country    string `json:"country"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
	Street     string `json:"street"`
}

// FieldError reports which field of a record failed validation.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("recipient: field %q is empty", e.Field)
}

func (e *FieldError) Unwrap() error {
	return ErrMissingField
}

// Validate checks that every field printed in the address block is present.
// Gender and state are optional.
func (r Record) Validate() error {
	for _, f := range []struct {
		name, value string
	}{
		{"name", r.Name},
		{"street", r.Street},
		{"postal_code", r.PostalCode},
		{"city", r.City},
		{"country", r.Country},
	} {
		if strings.TrimSpace(f.value) == "" {
			return &FieldError{Field: f.name}
		}
	}
	return nil
}

// AddressLines returns the address block, one entry per printed line:
// salutation and name, street, postal code and city, country in capitals.
// Capitals follow German casing rules, so "ß" becomes "SS".
func (r Record) AddressLines() []string {
	// A Caser keeps state between calls and must not be shared.
	upperCountry := cases.Upper(language.German)
	return []string{
		ParseGender(r.Gender).Salutation() + strings.TrimSpace(r.Name),
		strings.TrimSpace(r.Street),
		strings.TrimSpace(r.PostalCode) + " " + strings.TrimSpace(r.City),
		upperCountry.String(strings.TrimSpace(r.Country)),
	}
}
