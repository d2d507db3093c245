package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsSentinelIdentity(t *testing.T) {
	cause := errors.New("UNIQUE constraint failed: projects.name")
	err := fmt.Errorf("create project: %w", Wrap(ErrDuplicateProjectName, cause))

	assert.ErrorIs(t, err, ErrDuplicateProjectName)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrDuplicateCredentials)
	assert.Equal(t, KindDuplicate, KindOf(err))
	assert.Equal(t, ErrDuplicateProjectName.Message, MessageOf(err))
}

func TestKindOfForeignError(t *testing.T) {
	err := errors.New("disk on fire")

	assert.Equal(t, KindInternal, KindOf(err))
	assert.Equal(t, "internal server error", MessageOf(err))
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "project not found", ErrProjectNotFound.Error())
	assert.Equal(t, "invalid token: boom", Wrap(ErrInvalidToken, errors.New("boom")).Error())
}
