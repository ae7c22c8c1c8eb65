package entity

import (
	"regexp"
	"strings"

	"github.com/paemuri/brdoc"
	"github.com/quintans/faults"
)

var registrationFormat = regexp.MustCompile(`^[0-9]{11}$`)

// RegistrationID is the client CPF, eleven digits optionally written as 123.456.789-09.
type RegistrationID string

// Normalize drops the punctuation and blanks of the written form.
func (r RegistrationID) Normalize() RegistrationID {
	s := strings.NewReplacer(".", "", "-", "", " ", "").Replace(string(r))
	return RegistrationID(s)
}

func (r RegistrationID) Validate() error {
	if !registrationFormat.MatchString(string(r.Normalize())) {
		return faults.Errorf("'%s' is not an 11 digit number: %w", r, ErrInvalidRegistrationID)
	}
	return nil
}

// VerifyCheckDigits validates the format and the two CPF check digits.
// Ids made of a single repeated digit are rejected as well.
func (r RegistrationID) VerifyCheckDigits() error {
	if err := r.Validate(); err != nil {
		return err
	}
	if !brdoc.IsCPF(string(r.Normalize())) {
		return faults.Errorf("'%s' is not a valid CPF: %w", r, ErrInvalidRegistrationID)
	}
	return nil
}

// Format writes a valid id as 123.456.789-09. Invalid ids are returned as given.
func (r RegistrationID) Format() string {
	if r.Validate() != nil {
		return string(r)
	}
	s := string(r.Normalize())
	return s[:3] + "." + s[3:6] + "." + s[6:9] + "-" + s[9:]
}

// Mask hides all but the middle digits, for logs.
// Example: "12345678909" -> "***.456.789-**"
func (r RegistrationID) Mask() string {
	if r.Validate() != nil {
		return "***INVALID***"
	}
	s := string(r.Normalize())
	return "***." + s[3:6] + "." + s[6:9] + "-**"
}
