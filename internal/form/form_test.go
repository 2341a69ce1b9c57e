package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInput() Input {
	return Input{
		Gender:    "MALE",
		FirstName: "Johnny",
		LastName:  "Appleseed",
		Age:       "40",
	}
}

func TestValidate_ValidRecord(t *testing.T) {
	errs := Validate(validInput())
	assert.True(t, errs.Valid())
	assert.Empty(t, errs)
}

func TestValidate_FieldMessages(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Input)
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing gender",
			mutate:    func(in *Input) { in.Gender = "" },
			wantField: FieldGender,
			wantMsg:   "Required",
		},
		{
			name:      "unknown gender value",
			mutate:    func(in *Input) { in.Gender = "OTHER" },
			wantField: FieldGender,
			wantMsg:   "Required",
		},
		{
			name:      "missing first name",
			mutate:    func(in *Input) { in.FirstName = "" },
			wantField: FieldFirstName,
			wantMsg:   "Required",
		},
		{
			name:      "first name too short",
			mutate:    func(in *Input) { in.FirstName = "Amy" },
			wantField: FieldFirstName,
			wantMsg:   "First name must be at least 5 characters",
		},
		{
			name:      "first name too long",
			mutate:    func(in *Input) { in.FirstName = "Wolfeschlegelsteinhausen" },
			wantField: FieldFirstName,
			wantMsg:   "First name must be at most 20 characters",
		},
		{
			name:      "last name too short",
			mutate:    func(in *Input) { in.LastName = "Poe" },
			wantField: FieldLastName,
			wantMsg:   "Last name must be at least 5 characters",
		},
		{
			name:      "missing age",
			mutate:    func(in *Input) { in.Age = "" },
			wantField: FieldAge,
			wantMsg:   "Required",
		},
		{
			name:      "non-numeric age",
			mutate:    func(in *Input) { in.Age = "forty" },
			wantField: FieldAge,
			wantMsg:   "Age must be a number",
		},
		{
			name:      "age below minimum",
			mutate:    func(in *Input) { in.Age = "17" },
			wantField: FieldAge,
			wantMsg:   "Age must be at least 18",
		},
		{
			name: "female over ceiling",
			mutate: func(in *Input) {
				in.Gender = "FEMALE"
				in.Age = "120"
			},
			wantField: FieldAge,
			wantMsg:   "Age must not be higher than 117 for females",
		},
		{
			name:      "male over ceiling",
			mutate:    func(in *Input) { in.Age = "113" },
			wantField: FieldAge,
			wantMsg:   "Age must not be higher than 112 for males",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			errs := Validate(in)
			assert.False(t, errs.Valid())
			assert.Equal(t, tt.wantMsg, errs[tt.wantField])
		})
	}
}

// The age ceiling depends on the selected gender, so the same age value
// must flip between valid and invalid as gender changes. This is the
// rule that forces a form to re-validate age on every gender change.
func TestValidateAge_GenderChangeRevalidation(t *testing.T) {
	assert.Empty(t, ValidateAge("115", "FEMALE"))
	assert.Equal(t,
		"Age must not be higher than 112 for males",
		ValidateAge("115", "MALE"))

	// 120 is over both ceilings, with a gender-specific message each.
	assert.Equal(t,
		"Age must not be higher than 117 for females",
		ValidateAge("120", "FEMALE"))
	assert.Equal(t,
		"Age must not be higher than 112 for males",
		ValidateAge("120", "MALE"))

	// With no gender selected yet there is no ceiling to apply.
	assert.Empty(t, ValidateAge("120", ""))
}

func TestValidate_BoundaryValues(t *testing.T) {
	in := validInput()
	// Exactly at the bounds: 5-character first name, minimum age.
	in.FirstName = "Aaron"
	in.LastName = "Bartholomew-Higgins"
	in.Age = "18"
	assert.True(t, Validate(in).Valid())

	in.Gender = "FEMALE"
	in.Age = "117"
	assert.True(t, Validate(in).Valid())

	in.Gender = "MALE"
	in.Age = "112"
	assert.True(t, Validate(in).Valid())
}
