// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// handlers, storage, the service layer, and the client can all import
// types without depending on each other.
package types

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Gender is the enumerated gender value carried by every user record.
// Only the two constants below are accepted anywhere in the system.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Age limits. The maximum depends on gender, which is why the age rule
// cannot be expressed as a plain field tag and lives in a struct-level
// validation (see internal/users).
const (
	MinAge       = 18
	MaxAgeFemale = 117
	MaxAgeMale   = 112
)

// Name length bounds shared by firstName and lastName.
const (
	MinNameLen = 5
	MaxNameLen = 20
)

// User represents a persisted user record.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  — controls how the field appears when encoded to JSON
//     (camelCase names match the REST API conventions).
//
//  2. validate:"..." — rules checked by the go-playground/validator
//     package. The gender-conditional age ceiling is registered as a
//     struct-level validation because it spans two fields.
type User struct {
	// ID is assigned once by the server at creation and never changes.
	// Clients must not supply it; the decoder rejects payloads that try.
	ID        string `json:"id"`
	Gender    Gender `json:"gender"    validate:"required,oneof=MALE FEMALE"`
	FirstName string `json:"firstName" validate:"required,min=5,max=20"`
	LastName  string `json:"lastName"  validate:"required,min=5,max=20"`
	Age       int    `json:"age"       validate:"required,min=18"`
}

// ErrAgeNotNumber is returned when an age field cannot be parsed as an
// integer. The message matches the form-side validator's wording so the
// two enforcement points stay consistent.
var ErrAgeNotNumber = errors.New("Age must be a number")

// Age is the age field as it arrives on the wire. Browsers submit form
// values as strings, so the API accepts either a JSON number or a
// numeric string ("35" and 35 are the same payload). Anything else is a
// decode error — never a silent zero.
type Age int

// UnmarshalJSON implements the string-or-number acceptance rule.
func (a *Age) UnmarshalJSON(data []byte) error {
	s := string(data)

	// A quoted value like "35" — strip the quotes and parse the inside.
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return ErrAgeNotNumber
		}
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return ErrAgeNotNumber
	}

	*a = Age(n)
	return nil
}

// NewUser is the POST /api/users payload: every User field minus the
// server-assigned ID.
type NewUser struct {
	Gender    Gender `json:"gender"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       Age    `json:"age"`
}

// Patch is the PATCH /api/users/{id} payload: a partial record.
// Pointer fields distinguish "field absent" (nil — keep the stored
// value) from "field present" (overwrite), which an object-spread style
// merge cannot express in Go.
type Patch struct {
	Gender    *Gender `json:"gender"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Age       *Age    `json:"age"`
}

// Apply merges the patch onto u, field by field. A nil field preserves
// the prior value; ID is never touched.
func (p Patch) Apply(u User) User {
	if p.Gender != nil {
		u.Gender = *p.Gender
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Age != nil {
		u.Age = int(*p.Age)
	}
	return u
}
