package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/recipenest/client-go/internal/mockserver"
	"github.com/recipenest/client-go/internal/session"
	"github.com/recipenest/client-go/internal/types"
)

const testJWTSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// countingTransport counts round trips so tests can assert that local
// precondition failures never touch the network.
type countingTransport struct {
	calls int64
	next  http.RoundTripper
}

func (ct *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	atomic.AddInt64(&ct.calls, 1)
	return ct.next.RoundTrip(req)
}

func (ct *countingTransport) Calls() int64 {
	return atomic.LoadInt64(&ct.calls)
}

// newTestClient wires a client against a fresh mock API instance. Each
// call gets its own database and session store.
func newTestClient(t *testing.T) (*Client, *session.MemoryStore, *countingTransport) {
	t.Helper()

	srv, err := mockserver.NewServer(testJWTSecret)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	transport := &countingTransport{next: http.DefaultTransport}
	store := session.NewMemoryStore()

	c, err := New(ts.URL, store, WithHTTPClient(&http.Client{Transport: transport}))
	require.NoError(t, err)
	return c, store, transport
}

// signIn registers a throwaway account and returns its profile.
func signIn(t *testing.T, c *Client) *types.User {
	t.Helper()
	user, err := c.Auth.Register(context.Background(), "Ann", "ann@x.com", "secret1")
	require.NoError(t, err)
	return user
}

// sampleCreateRequest returns a well-formed recipe submission.
func sampleCreateRequest() types.CreateRecipeRequest {
	return types.CreateRecipeRequest{
		Name:        "Masala Omelette",
		Category:    types.CategoryNonVeg,
		Ingredients: []string{"Eggs", "Onions", "Green chillies", "Coriander"},
		Steps:       []string{"Whisk eggs with spices", "Pour into hot pan", "Fold and serve"},
		CookingTime: "10 minutes",
		Difficulty:  types.DifficultyEasy,
		Image:       ImageDataURI("image/png", []byte{0x89, 0x50, 0x4e, 0x47}),
	}
}
