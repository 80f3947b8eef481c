package errors

import (
	"net/http"
	"testing"

	"petkeeper/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrInvalidArgument.WithDetails("petId, taskTitle")

	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.NotErrorIs(t, err, ErrPetNotFound)
	assert.Equal(t, "Dados obrigatórios não fornecidos.", err.Message())
	assert.Equal(t, "petId, taskTitle", err.Details())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(ErrPetNotFound))
	assert.Equal(t, KindFailedPrecondition, KindOf(errors.Wrap(ErrNoFamilyCode, "resolve")))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.Equal(t, KindInternal, KindOf(NewInternalError(errors.New("db down"), "query")))
}

func TestInternalError_HidesCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:443: connection refused")
	err := NewInternalError(cause, "failed to query family members")

	assert.Equal(t, ErrInternal.Message(), err.Message())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAsInternal(t *testing.T) {
	assert.NoError(t, AsInternal(nil, "x"))
	assert.Same(t, ErrPetNotFound, AsInternal(ErrPetNotFound, "x"))
	assert.Equal(t, KindInternal, KindOf(AsInternal(errors.New("boom"), "x")))
}

func TestKind_HTTPCode(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, KindUnauthenticated.HTTPCode())
	assert.Equal(t, http.StatusNotFound, KindNotFound.HTTPCode())
	assert.Equal(t, http.StatusPreconditionFailed, KindFailedPrecondition.HTTPCode())
	assert.Equal(t, http.StatusInternalServerError, KindInternal.HTTPCode())
}
