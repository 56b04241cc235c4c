package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrors_MatchesValidationSentinel(t *testing.T) {
	err := FieldErrors{}.Add("title", "must not be empty").OrNil()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrorValidation)

	var fieldErrs FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Equal(t, "title", fieldErrs[0].Field)
}

func TestFieldErrors_OrNilEmpty(t *testing.T) {
	assert.NoError(t, FieldErrors{}.OrNil())

	var none FieldErrors
	assert.NoError(t, none.OrNil())
}

func TestFieldErrors_ErrorMessage(t *testing.T) {
	err := FieldErrors{}.
		Add("email", "must not be empty").
		Add("password", "must not be empty")

	assert.Equal(t, "validation failed: email: must not be empty; password: must not be empty", err.Error())
}
