// Package form is the form-side validator: the rules a candidate user
// record must satisfy before the submission form lets it through.
//
// The service layer enforces the same rules independently (see
// internal/users). Having two enforcement points is deliberate — the
// form gives the operator an immediate per-field message, the service
// protects the store from clients that bypass the form. The two
// implementations must stay logically consistent; the constants they
// share live in internal/types.
//
// Validation is synchronous and cheap, so a UI can re-run it on every
// field change. Note that ValidateAge takes the currently selected
// gender: the age ceiling depends on it, so the age field must be
// re-validated whenever gender changes.
package form

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aanand-mishra/users-api/internal/types"
)

// Field message constants shared by several rules.
const msgRequired = "Required"

// Field names as they appear in payloads and in Errors keys.
const (
	FieldGender    = "gender"
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldAge       = "age"
)

// Input is a candidate record as entered in the form: raw text per
// field, exactly what an <input> element holds before any parsing.
type Input struct {
	Gender    string
	FirstName string
	LastName  string
	Age       string
}

// Errors maps a field name to its message. A field with no entry is
// valid; an empty map means the whole record may be submitted.
type Errors map[string]string

// Valid reports whether no field has a message.
func (e Errors) Valid() bool { return len(e) == 0 }

// Validate runs every field rule and collects the messages.
func Validate(in Input) Errors {
	errs := Errors{}

	if msg := ValidateGender(in.Gender); msg != "" {
		errs[FieldGender] = msg
	}
	if msg := ValidateFirstName(in.FirstName); msg != "" {
		errs[FieldFirstName] = msg
	}
	if msg := ValidateLastName(in.LastName); msg != "" {
		errs[FieldLastName] = msg
	}
	if msg := ValidateAge(in.Age, in.Gender); msg != "" {
		errs[FieldAge] = msg
	}

	return errs
}

// ValidateGender accepts only the two enumerated values. An unknown
// value reads as "nothing selected" to the operator, hence "Required".
func ValidateGender(gender string) string {
	switch types.Gender(gender) {
	case types.GenderMale, types.GenderFemale:
		return ""
	}
	return msgRequired
}

// ValidateFirstName checks presence and the [5, 20] length bounds.
func ValidateFirstName(name string) string {
	return nameMessage("First name", name)
}

// ValidateLastName checks presence and the [5, 20] length bounds.
func ValidateLastName(name string) string {
	return nameMessage("Last name", name)
}

func nameMessage(label, name string) string {
	if name == "" {
		return msgRequired
	}
	// Counted in runes, not bytes, to agree with the service-side
	// validator's handling of non-ASCII names.
	if utf8.RuneCountInString(name) < types.MinNameLen {
		return fmt.Sprintf("%s must be at least %d characters", label, types.MinNameLen)
	}
	if utf8.RuneCountInString(name) > types.MaxNameLen {
		return fmt.Sprintf("%s must be at most %d characters", label, types.MaxNameLen)
	}
	return ""
}

// ValidateAge checks that age parses as a number, meets the minimum,
// and stays under the ceiling for the currently selected gender.
// Callers must re-run this whenever the gender selection changes.
func ValidateAge(age, gender string) string {
	if strings.TrimSpace(age) == "" {
		return msgRequired
	}

	n, err := strconv.Atoi(strings.TrimSpace(age))
	if err != nil {
		return "Age must be a number"
	}

	if n < types.MinAge {
		return fmt.Sprintf("Age must be at least %d", types.MinAge)
	}
	if types.Gender(gender) == types.GenderFemale && n > types.MaxAgeFemale {
		return fmt.Sprintf("Age must not be higher than %d for females", types.MaxAgeFemale)
	}
	if types.Gender(gender) == types.GenderMale && n > types.MaxAgeMale {
		return fmt.Sprintf("Age must not be higher than %d for males", types.MaxAgeMale)
	}

	return ""
}
