package fetch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type symbol struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestJSONFetchesAndDecodes(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "aap", r.URL.Query().Get("q"))
		require.Equal(t, "application/json", r.Header.Get("Accept"))
		_ = json.NewEncoder(w).Encode([]symbol{{ID: "aapl", Name: "AAPL"}})
	}))
	defer srv.Close()

	fn, err := JSON[symbol](srv.URL, Options{})
	require.NoError(t, err)

	items, err := fn(context.Background(), "aap")
	require.NoError(t, err)
	require.Equal(t, []symbol{{ID: "aapl", Name: "AAPL"}}, items)
}

func TestJSONCustomQueryParam(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "term", r.URL.Query().Get("query"))
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	fn, err := JSON[symbol](srv.URL, Options{QueryParam: "query"})
	require.NoError(t, err)

	items, err := fn(context.Background(), "term")
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestJSONNonSuccessStatusIsAnError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	fn, err := JSON[symbol](srv.URL, Options{})
	require.NoError(t, err)

	_, err = fn(context.Background(), "x")
	require.Error(t, err)
	require.Contains(t, err.Error(), "500")
}

func TestJSONMalformedBodyIsAnError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	fn, err := JSON[symbol](srv.URL, Options{})
	require.NoError(t, err)

	_, err = fn(context.Background(), "x")
	require.Error(t, err)
}

func TestJSONInvalidEndpoint(t *testing.T) {
	t.Parallel()

	_, err := JSON[symbol]("://bad", Options{})
	require.Error(t, err)
}

func TestJSONHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	fn, err := JSON[symbol](srv.URL, Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = fn(ctx, "x")
	require.Error(t, err)
}
