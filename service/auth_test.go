package service

import (
	"testing"

	dmn "github.com/beka-birhanu/mazebot-solver/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strongPassword = "Tr1cky-Labyrinth-Walker"

func TestAuth(t *testing.T) {
	users := newMemUsers()
	tokenizer := &stubTokenizer{}
	auth, err := NewAuthService(users, tokenizer)
	require.NoError(t, err)

	t.Run("Register", func(t *testing.T) {
		require.NoError(t, auth.Register("theseus", strongPassword))

		stored, err := users.ByUsername("theseus")
		require.NoError(t, err)
		assert.NotEqual(t, strongPassword, stored.PasswordHash)

		assert.ErrorIs(t, auth.Register("ariadne", "password"), dmn.ErrWeakPassword)
		assert.ErrorIs(t, auth.Register("ab", strongPassword), dmn.ErrUsernameTooShort)
		assert.Error(t, auth.Register("theseus", strongPassword))
	})

	t.Run("Sign in", func(t *testing.T) {
		user, token, err := auth.SignIn("theseus", strongPassword)
		require.NoError(t, err)
		assert.Equal(t, "token-theseus", token)
		assert.Equal(t, "theseus", user.Username)
		assert.Equal(t, user.ID.String(), tokenizer.claims["userID"])
		assert.Equal(t, tokenLifetime, tokenizer.exp)
	})

	t.Run("Bad credentials", func(t *testing.T) {
		_, _, err := auth.SignIn("theseus", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, _, err = auth.SignIn("minotaur", strongPassword)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Missing dependencies", func(t *testing.T) {
		_, err := NewAuthService(nil, tokenizer)
		assert.ErrorIs(t, err, ErrMissingDep)
	})
}
