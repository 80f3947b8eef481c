package validator

import (
	"testing"

	domainerrors "petkeeper/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Kind    string `json:"kind" validate:"required"`
	Message string `json:"message,omitempty" validate:"max=5"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Kind: "new_pet"}))

	err := v.Validate(&sample{Message: "too long"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArgument))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.KindInvalidArgument, appErr.Kind())
	assert.Equal(t, "kind (required), message (max)", appErr.Details())
}
