package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipenest/client-go/internal/apierror"
	"github.com/recipenest/client-go/internal/session"
)

func TestRegisterStoresSession(t *testing.T) {
	c, store, _ := newTestClient(t)

	user, err := c.Auth.Register(context.Background(), "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, "ann@x.com", user.Email)
	assert.NotEmpty(t, user.ID)

	sess, err := store.Load()
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, *user, sess.User)

	// The catalog stays readable without auth afterwards.
	recipes, err := c.Recipes.List(context.Background(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, recipes)
}

func TestRegisterValidatesLocally(t *testing.T) {
	c, _, transport := newTestClient(t)
	ctx := context.Background()

	cases := []struct {
		name, email, password string
	}{
		{"", "ann@x.com", "secret1"},
		{"Ann", "", "secret1"},
		{"Ann", "not-an-address", "secret1"},
		{"Ann", "ann@x.com", ""},
		{"Ann", "ann@x.com", "short"},
	}
	for _, tc := range cases {
		_, err := c.Auth.Register(ctx, tc.name, tc.email, tc.password)
		var invalid *apierror.ValidationError
		assert.ErrorAs(t, err, &invalid)
	}

	assert.EqualValues(t, 0, transport.Calls())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	c, _, _ := newTestClient(t)
	ctx := context.Background()

	_, err := c.Auth.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	_, err = c.Auth.Register(ctx, "Ann Again", "ann@x.com", "secret2")

	var remote *apierror.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusBadRequest, remote.Status)
	assert.Equal(t, "Email already registered", remote.Message)
}

func TestLoginOverwritesSession(t *testing.T) {
	c, store, _ := newTestClient(t)
	ctx := context.Background()

	_, err := c.Auth.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)
	first, err := store.Load()
	require.NoError(t, err)

	_, err = c.Auth.Register(ctx, "Bea", "bea@x.com", "secret2")
	require.NoError(t, err)

	user, err := c.Auth.Login(ctx, "ann@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, user.ID)

	current, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, first.User, current.User)
}

func TestLoginWrongPassword(t *testing.T) {
	c, _, _ := newTestClient(t)
	ctx := context.Background()

	_, err := c.Auth.Register(ctx, "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)

	_, err = c.Auth.Login(ctx, "ann@x.com", "wrong-password")

	var remote *apierror.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusUnauthorized, remote.Status)
	assert.Equal(t, "Incorrect email or password", remote.Message)
}

func TestLogoutClearsSession(t *testing.T) {
	c, store, _ := newTestClient(t)

	signIn(t, c)
	require.NoError(t, c.Auth.Logout())

	_, err := store.Load()
	assert.ErrorIs(t, err, session.ErrNoSession)

	// Logout with no session is still a success.
	require.NoError(t, c.Auth.Logout())
}
