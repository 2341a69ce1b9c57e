package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAge_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    int
		wantErr bool
	}{
		{name: "json number", payload: `{"age": 35}`, want: 35},
		{name: "numeric string", payload: `{"age": "35"}`, want: 35},
		{name: "string with spaces", payload: `{"age": " 40 "}`, want: 40},
		{name: "non-numeric string", payload: `{"age": "abc"}`, wantErr: true},
		{name: "float", payload: `{"age": 35.5}`, wantErr: true},
		{name: "null", payload: `{"age": null}`, wantErr: true},
		{name: "object", payload: `{"age": {}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload NewUser
			err := json.Unmarshal([]byte(tt.payload), &payload)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, int(payload.Age))
		})
	}
}

func TestPatch_Apply(t *testing.T) {
	stored := User{
		ID:        "abc-123",
		Gender:    GenderMale,
		FirstName: "Johnny",
		LastName:  "Appleseed",
		Age:       40,
	}

	t.Run("present field overwrites, absent fields preserve", func(t *testing.T) {
		name := "Richard"
		merged := Patch{FirstName: &name}.Apply(stored)

		assert.Equal(t, "Richard", merged.FirstName)
		assert.Equal(t, stored.ID, merged.ID)
		assert.Equal(t, stored.Gender, merged.Gender)
		assert.Equal(t, stored.LastName, merged.LastName)
		assert.Equal(t, stored.Age, merged.Age)
	})

	t.Run("empty patch changes nothing", func(t *testing.T) {
		assert.Equal(t, stored, Patch{}.Apply(stored))
	})

	t.Run("all fields present replaces everything but id", func(t *testing.T) {
		gender := GenderFemale
		first := "Rosalind"
		last := "Franklin"
		age := Age(99)

		merged := Patch{
			Gender:    &gender,
			FirstName: &first,
			LastName:  &last,
			Age:       &age,
		}.Apply(stored)

		assert.Equal(t, User{
			ID:        "abc-123",
			Gender:    GenderFemale,
			FirstName: "Rosalind",
			LastName:  "Franklin",
			Age:       99,
		}, merged)
	})
}

func TestPatch_AbsentFieldsDecodeAsNil(t *testing.T) {
	var patch Patch
	require.NoError(t, json.Unmarshal([]byte(`{"firstName":"Richard"}`), &patch))

	require.NotNil(t, patch.FirstName)
	assert.Equal(t, "Richard", *patch.FirstName)
	assert.Nil(t, patch.Gender)
	assert.Nil(t, patch.LastName)
	assert.Nil(t, patch.Age)
}
