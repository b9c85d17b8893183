package seed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spellsheet/internal/codec"
	"spellsheet/internal/ports"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEmbedded_DecodesAsLibrary(t *testing.T) {
	data, err := Embedded{}.Fetch(context.Background())
	require.NoError(t, err)

	texts, err := codec.DecodeJSON(data)
	require.NoError(t, err)
	assert.Contains(t, texts, "because")
	assert.Greater(t, len(texts), 50)
}

func TestEmbedded_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Embedded{}.Fetch(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestHTTP_Fetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"library":["cat","dog"]}`))
	}))
	defer srv.Close()

	data, err := NewHTTP(srv.URL, time.Second, newTestLogger()).Fetch(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"library":["cat","dog"]}`, string(data))
}

func TestHTTP_BadStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewHTTP(srv.URL, time.Second, newTestLogger()).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestHTTP_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewHTTP(srv.URL, 50*time.Millisecond, newTestLogger()).Fetch(context.Background())
	require.Error(t, err)
}

type failing struct{ err error }

func (f failing) Fetch(context.Context) ([]byte, error) { return nil, f.err }

func TestFallback(t *testing.T) {
	data, err := Fallback{failing{errors.New("offline")}, Embedded{}}.Fetch(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	boom := errors.New("boom")
	_, err = Fallback{failing{boom}}.Fetch(context.Background())
	require.ErrorIs(t, err, boom)

	_, err = Fallback(nil).Fetch(context.Background())
	require.Error(t, err)

	var _ ports.SeedSource = Fallback{}
}
