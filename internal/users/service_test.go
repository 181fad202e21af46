package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSignupCreatesUserAndToken(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	user, token, err := svc.Signup(context.Background(), SignupInput{
		Username:  "alice",
		Email:     "Alice@Example.com",
		Password:  "correct horse",
		FirstName: "Alice",
		LastName:  "Smith",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "correct horse", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse")))
}

func TestSignupValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	cases := []SignupInput{
		{Username: "", Email: "a@b.com", Password: "password1"},
		{Username: "bob", Email: "", Password: "password1"},
		{Username: "bob", Email: "not-an-email", Password: "password1"},
		{Username: "bob", Email: "a@b.com", Password: "short"},
	}
	for _, in := range cases {
		_, _, err := svc.Signup(context.Background(), in)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %+v", in)
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	_, _, err := svc.Signup(context.Background(), SignupInput{Username: "alice", Email: "a@b.com", Password: "password1"})
	require.NoError(t, err)

	_, _, err = svc.Signup(context.Background(), SignupInput{Username: "alice", Email: "other@b.com", Password: "password1"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestLoginRoundTrip(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	created, _, err := svc.Signup(context.Background(), SignupInput{Username: "alice", Email: "a@b.com", Password: "password1"})
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), "alice", "password1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.NotEmpty(t, token)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	_, _, err := svc.Signup(context.Background(), SignupInput{Username: "alice", Email: "a@b.com", Password: "password1"})
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "alice", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody", "password1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
