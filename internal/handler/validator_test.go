package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Identifier(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(CraftRequest{RecipeID: "healing_potion", Batches: 1}))
	assert.NoError(t, v.ValidateStruct(ServeRequest{}), "identifier allows an empty optional field")

	err := v.ValidateStruct(CraftRequest{RecipeID: "Healing Potion", Batches: 1})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"recipeid": "Must be a lowercase identifier"}, FormatValidationError(err))
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	err := v.ValidateStruct(CraftRequest{Batches: 101})
	require.Error(t, err)
	fields := FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["recipeid"])
	assert.Equal(t, "Must be at most 100", fields["batches"])

	speed := 0.0
	err = v.ValidateStruct(TimeControlRequest{Speed: &speed})
	require.Error(t, err)
	assert.Equal(t, "Must be greater than 0", FormatValidationError(err)["speed"])

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
}
