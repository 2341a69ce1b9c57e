package users

import "errors"

// ErrNotFound is returned when no record has the requested id.
// Handlers translate it to 404; everything else is their problem.
var ErrNotFound = errors.New("user not found")

// InvalidInputError carries the human-readable reason a payload was
// rejected: an unrecognized field name or a value outside the record
// rules. It is detected before anything touches the store, so a
// rejected payload is never persisted.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string { return e.Reason }

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}
