package dictionary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frisklabs/frisk/aplog"
	"github.com/frisklabs/frisk/config"
	"github.com/frisklabs/frisk/httpf"
)

func testLogBuilder() aplog.Builder {
	return aplog.NewBuilder((&config.LoggingConfigNone{}).GetRootLogger())
}

func suggestionHandler(arrived chan<- struct{}, release <-chan struct{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "slow" {
			if arrived != nil {
				arrived <- struct{}{}
			}
			select {
			case <-release:
			case <-r.Context().Done():
				return
			}
		}

		_ = json.NewEncoder(w).Encode([]map[string]string{
			{"category": r.PathValue("category"), "value": q + "@example.com"},
		})
	}
}

func TestLookup(t *testing.T) {
	t.Run("it returns suggestions for the category", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/dictionary/email", r.URL.Path)
			assert.Equal(t, "10", r.URL.Query().Get("limit"))
			_ = json.NewEncoder(w).Encode([]map[string]string{
				{"category": "email", "value": "dana@example.com"},
			})
		}))
		defer srv.Close()

		s, err := NewService(httpf.Static(resty.New().SetBaseURL(srv.URL)), 10, testLogBuilder())
		require.NoError(t, err)

		out, err := s.Lookup(context.Background(), "email", "dan")
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "dana@example.com", out[0].Value)
	})

	t.Run("a newer lookup cancels the in-flight one for the same category", func(t *testing.T) {
		arrived := make(chan struct{}, 1)
		release := make(chan struct{})
		defer close(release)

		mux := http.NewServeMux()
		mux.Handle("GET /api/v1/dictionary/{category}", suggestionHandler(arrived, release))
		srv := httptest.NewServer(mux)
		defer srv.Close()

		s, err := NewService(httpf.Static(resty.New().SetBaseURL(srv.URL)), 10, testLogBuilder())
		require.NoError(t, err)

		slowErr := make(chan error, 1)
		go func() {
			_, err := s.Lookup(context.Background(), "email", "slow")
			slowErr <- err
		}()
		<-arrived

		out, err := s.Lookup(context.Background(), "email", "fast")
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "fast@example.com", out[0].Value)

		assert.Error(t, <-slowErr)
	})

	t.Run("lookups for different categories do not cancel each other", func(t *testing.T) {
		arrived := make(chan struct{}, 1)
		release := make(chan struct{})

		mux := http.NewServeMux()
		mux.Handle("GET /api/v1/dictionary/{category}", suggestionHandler(arrived, release))
		srv := httptest.NewServer(mux)
		defer srv.Close()

		s, err := NewService(httpf.Static(resty.New().SetBaseURL(srv.URL)), 10, testLogBuilder())
		require.NoError(t, err)

		slowDone := make(chan error, 1)
		go func() {
			_, err := s.Lookup(context.Background(), "email", "slow")
			slowDone <- err
		}()
		<-arrived

		_, err = s.Lookup(context.Background(), "country", "no")
		require.NoError(t, err)

		close(release)
		assert.NoError(t, <-slowDone)
	})
}
