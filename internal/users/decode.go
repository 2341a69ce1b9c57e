package users

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/aanand-mishra/users-api/internal/types"
)

// The decoders below are the first half of the service-side validator:
// they reject any payload carrying a field name outside the recognized
// set {gender, firstName, lastName, age}. DisallowUnknownFields makes
// the JSON decoder do the name check for us — an unexpected key fails
// the decode with an error naming the field, which is exactly the
// reason we want to hand back to the client. Note this also covers a
// client trying to smuggle in its own "id": ID is server-assigned, so
// it is not part of either payload struct.

// DecodeNewUser parses a create payload. All fields are decoded here;
// whether their values satisfy the record rules is the service's job.
func DecodeNewUser(r io.Reader) (types.NewUser, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var payload types.NewUser
	if err := dec.Decode(&payload); err != nil {
		return types.NewUser{}, decodeError(err)
	}
	return payload, nil
}

// DecodePatch parses a partial update payload. Absent fields stay nil,
// which the merge in types.Patch.Apply treats as "keep the stored value".
func DecodePatch(r io.Reader) (types.Patch, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var patch types.Patch
	if err := dec.Decode(&patch); err != nil {
		return types.Patch{}, decodeError(err)
	}
	return patch, nil
}

func decodeError(err error) error {
	if errors.Is(err, io.EOF) {
		return &InvalidInputError{Reason: "request body is empty"}
	}
	// Covers malformed JSON, unrecognized field names, and the
	// string-or-number age rule (types.ErrAgeNotNumber).
	return &InvalidInputError{Reason: err.Error()}
}
