package users

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/users-api/internal/types"
)

// Tags reported by the struct-level age check. They exist only so the
// message translation below can tell the two ceilings apart.
const (
	tagMaxAgeFemale = "maxage-female"
	tagMaxAgeMale   = "maxage-male"
)

// newValidator builds the service-side value validator: the validate
// struct tags on types.User plus a struct-level rule for the
// gender-conditional age ceiling, which spans two fields and therefore
// cannot be a field tag.
//
// These rules mirror the form-side validator (internal/form) exactly,
// so a client that bypasses the form cannot persist an out-of-range
// record.
func newValidator() *validator.Validate {
	v := validator.New()

	// Report json field names ("firstName") instead of Go field names
	// ("FirstName") so messages match what the client actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterStructValidation(userStructLevel, types.User{})

	return v
}

func userStructLevel(sl validator.StructLevel) {
	u := sl.Current().Interface().(types.User)

	switch u.Gender {
	case types.GenderFemale:
		if u.Age > types.MaxAgeFemale {
			sl.ReportError(u.Age, "age", "Age", tagMaxAgeFemale, "")
		}
	case types.GenderMale:
		if u.Age > types.MaxAgeMale {
			sl.ReportError(u.Age, "age", "Age", tagMaxAgeMale, "")
		}
	}
}

// validationReason converts a slice of validator.FieldError values into
// one human-readable reason string, one sentence per failing field,
// joined with ", ".
func validationReason(errs validator.ValidationErrors) string {
	var msgs []string

	for _, e := range errs {
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", e.Field()))
		case "oneof":
			// e.Param() is the space-separated value list from the tag.
			msgs = append(msgs, fmt.Sprintf("field %s must be one of %s",
				e.Field(), strings.Join(strings.Fields(e.Param()), ", ")))
		case "min":
			if e.Field() == "age" {
				msgs = append(msgs, fmt.Sprintf("Age must be at least %d", types.MinAge))
			} else {
				msgs = append(msgs, fmt.Sprintf("field %s must be at least %s characters",
					e.Field(), e.Param()))
			}
		case "max":
			msgs = append(msgs, fmt.Sprintf("field %s must be at most %s characters",
				e.Field(), e.Param()))
		case tagMaxAgeFemale:
			msgs = append(msgs, fmt.Sprintf("Age must not be higher than %d for females",
				types.MaxAgeFemale))
		case tagMaxAgeMale:
			msgs = append(msgs, fmt.Sprintf("Age must not be higher than %d for males",
				types.MaxAgeMale))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return strings.Join(msgs, ", ")
}

// checkUser runs the full rule set against a record about to be
// persisted and wraps any failure as InvalidInput.
func (s *Service) checkUser(u types.User) error {
	err := s.validate.Struct(u)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return &InvalidInputError{Reason: validationReason(verrs)}
	}
	return err
}
