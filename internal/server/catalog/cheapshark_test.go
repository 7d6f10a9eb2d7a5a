package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gamecart/internal/common"
	"github.com/dmitrijs2005/gamecart/internal/server/models"
)

func newTestClient(handler http.Handler) (*CheapShark, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewCheapShark(srv.URL, 2*time.Second, 8), srv
}

func TestSearch_ParsesResults(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "chess", r.URL.Query().Get("title"))
		w.Write([]byte(`[
			{"gameID":"10","external":"Chess","cheapest":"9.99"},
			{"gameID":"11","external":"Chess Ultra","cheapest":"2.49"},
			{"gameID":"broken","external":"Skipme","cheapest":"1.00"}
		]`))
	}))
	defer srv.Close()

	games, err := c.Search(context.Background(), "chess")
	require.NoError(t, err)
	assert.Equal(t, []models.Game{
		{ID: 10, Name: "Chess", Price: 9.99},
		{ID: 11, Name: "Chess Ultra", Price: 2.49},
	}, games)
}

func TestGameInfo_ParsesResponse(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("id"))
		w.Write([]byte(`{"info":{"title":"Chess"},"deals":[{"price":"9.99"},{"price":"12.00"}]}`))
	}))
	defer srv.Close()

	game, err := c.GameInfo(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, &models.Game{ID: 10, Name: "Chess", Price: 9.99}, game)
}

func TestGameInfo_UnknownID_ReturnsErrNotFound(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty array", `[]`},
		{"empty object", `{}`},
		{"empty body", ``},
		{"no title", `{"info":{},"deals":[]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := c.GameInfo(context.Background(), 999)
			require.ErrorIs(t, err, common.ErrNotFound)
		})
	}
}

func TestGameInfo_ServerError_ReturnsErrUpstream(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := c.GameInfo(context.Background(), 10)
	require.ErrorIs(t, err, common.ErrUpstream)
}

func TestGameInfo_Unreachable_ReturnsErrUpstream(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listens anymore
	c := NewCheapShark(srv.URL, time.Second, 8)

	_, err := c.GameInfo(context.Background(), 10)
	require.ErrorIs(t, err, common.ErrUpstream)
}

func TestGameInfo_SecondLookupServedFromCache(t *testing.T) {
	var calls atomic.Int64
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"info":{"title":"Chess"},"deals":[{"price":"9.99"}]}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	_, err := c.GameInfo(ctx, 10)
	require.NoError(t, err)
	_, err = c.GameInfo(ctx, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(1), calls.Load(), "second lookup must hit the cache")
}

func TestSearch_SecondSearchServedFromCache(t *testing.T) {
	var calls atomic.Int64
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`[{"gameID":"10","external":"Chess","cheapest":"9.99"}]`))
	}))
	defer srv.Close()

	ctx := context.Background()
	_, err := c.Search(ctx, "chess")
	require.NoError(t, err)
	_, err = c.Search(ctx, "chess")
	require.NoError(t, err)

	assert.Equal(t, int64(1), calls.Load(), "second search must hit the cache")
}
