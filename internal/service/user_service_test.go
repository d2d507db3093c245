package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projecthub/internal/apperr"
)

func TestUserService_SignupIssuesTokenForNewUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	token, err := f.users.Signup(ctx, "alice", "pw")
	require.NoError(t, err)

	user, err := f.users.ResolveToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.Password)
}

func TestUserService_RegisterValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, tc := range [][2]string{{"", "pw"}, {"alice", ""}, {"  ", "pw"}, {"alice", "   "}} {
		_, err := f.users.Register(ctx, tc[0], tc[1])
		assert.ErrorIs(t, err, apperr.ErrEmptyCredentials, "username=%q password=%q", tc[0], tc[1])
	}

	_, err := f.users.Register(ctx, "alice", "pw")
	require.NoError(t, err)

	_, err = f.users.Signup(ctx, "alice", "other")
	assert.ErrorIs(t, err, apperr.ErrDuplicateCredentials)
	assert.Equal(t, apperr.KindDuplicate, apperr.KindOf(err))
}

func TestUserService_Login(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "alice", "pw")

	token, err := f.users.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	subject, err := f.tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	_, err = f.users.Login(ctx, "alice", "PW")
	assert.ErrorIs(t, err, apperr.ErrLoginFailed)

	_, err = f.users.Login(ctx, "mallory", "pw")
	assert.ErrorIs(t, err, apperr.ErrLoginFailed)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = f.users.Login(ctx, "alice", "")
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
}

func TestUserService_ResolveToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.ResolveToken(ctx, "garbage")
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)

	// signed correctly, but nobody by that name exists
	orphan, err := f.tokens.Issue("ghost")
	require.NoError(t, err)
	_, err = f.users.ResolveToken(ctx, orphan)
	assert.ErrorIs(t, err, apperr.ErrInvalidToken)
}

func TestUserService_GetByUsername(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "alice", "pw")

	user, err := f.users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, user.Password)

	_, err = f.users.GetByUsername(ctx, "bob")
	assert.ErrorIs(t, err, apperr.ErrUserNotFound)
}
