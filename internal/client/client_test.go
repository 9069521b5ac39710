package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipenest/client-go/internal/apierror"
	"github.com/recipenest/client-go/internal/session"
	"github.com/recipenest/client-go/internal/types"
)

func TestNewRejectsBadBaseURL(t *testing.T) {
	store := session.NewMemoryStore()

	_, err := New("://nope", store)
	assert.Error(t, err)

	_, err = New("ftp://example.com", store)
	assert.Error(t, err)
}

func TestRemoteErrorCarriesDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "Email already registered"}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL, session.NewMemoryStore())
	require.NoError(t, err)

	_, err = c.Auth.Login(context.Background(), "ann@x.com", "secret1")

	var remote *apierror.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusBadRequest, remote.Status)
	assert.Equal(t, "Email already registered", remote.Message)
}

func TestRemoteErrorGenericMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer ts.Close()

	c, err := New(ts.URL, session.NewMemoryStore())
	require.NoError(t, err)

	_, err = c.Recipes.List(context.Background(), "")

	var remote *apierror.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusInternalServerError, remote.Status)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), remote.Message)
}

func TestNetworkErrorOnUnreachableServer(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	c, err := New(url, session.NewMemoryStore())
	require.NoError(t, err)

	_, err = c.Recipes.List(context.Background(), "")

	var network *apierror.NetworkError
	assert.ErrorAs(t, err, &network)
}

func TestNetworkErrorOnCancelledContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	c, err := New(ts.URL, session.NewMemoryStore())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = c.Recipes.List(ctx, "")

	var network *apierror.NetworkError
	assert.ErrorAs(t, err, &network)
}

func TestSchemaErrorOnMalformedPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"not": "a list"}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL, session.NewMemoryStore())
	require.NoError(t, err)

	_, err = c.Recipes.List(context.Background(), "")

	var schema *apierror.SchemaError
	assert.ErrorAs(t, err, &schema)
}

func TestSchemaErrorOnInvalidRecipe(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// A recipe with no ingredients violates the catalog schema.
		w.Write([]byte(`[{"id": "r1", "name": "Ghost", "category": "veg",
			"ingredients": [], "steps": ["step"], "cooking_time": "5 minutes",
			"difficulty": "easy", "image": "x"}]`))
	}))
	defer ts.Close()

	c, err := New(ts.URL, session.NewMemoryStore())
	require.NoError(t, err)

	_, err = c.Recipes.List(context.Background(), "")

	var schema *apierror.SchemaError
	assert.ErrorAs(t, err, &schema)
}

func TestAuthRequiredWithoutSessionMakesNoCall(t *testing.T) {
	c, _, transport := newTestClient(t)

	_, err := c.Favorites.List(context.Background())
	assert.ErrorIs(t, err, apierror.ErrAuthRequired)

	err = c.Favorites.Add(context.Background(), "some-id")
	assert.ErrorIs(t, err, apierror.ErrAuthRequired)

	err = c.Favorites.Remove(context.Background(), "some-id")
	assert.ErrorIs(t, err, apierror.ErrAuthRequired)

	_, err = c.Recipes.Create(context.Background(), sampleCreateRequest())
	assert.ErrorIs(t, err, apierror.ErrAuthRequired)

	assert.EqualValues(t, 0, transport.Calls())
}

func TestExpiredTokenFailsFast(t *testing.T) {
	c, store, transport := newTestClient(t)

	claims := types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		UserID: "user-1",
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	require.NoError(t, store.Save(&types.Session{
		Token: expired,
		User:  types.User{ID: "user-1", Name: "Ann", Email: "ann@x.com"},
	}))

	_, err = c.Favorites.List(context.Background())
	assert.ErrorIs(t, err, apierror.ErrAuthRequired)
	assert.EqualValues(t, 0, transport.Calls())
}
