package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/repository"
)

func newFixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	fixtures := store.DefaultFixtures()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/stats", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Request-ID") == "" {
			t.Errorf("missing request id header")
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(fixtures.Stats)
	})
	mux.HandleFunc("/api/runs/", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/api/runs/"):]
		run, ok := fixtures.Runs[id]
		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"error":"Run not found"}`)
			return
		}
		json.NewEncoder(w).Encode(run)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestClientFetchesStatsAndRun(t *testing.T) {
	server := newFixtureServer(t)
	client := NewClient(server.URL+"/", time.Second)
	ctx := context.Background()

	stats, err := client.FetchStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, "run-4927", stats.ActiveRunID)
	assert.Equal(t, 142, stats.Skills)

	run, err := client.FetchRun(ctx, stats.ActiveRunID)
	require.NoError(t, err)
	assert.Equal(t, "run-4927", run.ID)
	assert.Equal(t, 0.64, run.Progress)
	require.Len(t, run.Workers, 5)
	assert.Nil(t, run.Workers[2].Progress)
}

func TestClientRunErrorMessages(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"error field", http.StatusNotFound, `{"error":"Run not found"}`, "Run not found"},
		{"bad request", http.StatusBadRequest, `{"error":"Invalid run identifier"}`, "Invalid run identifier"},
		{"no error field", http.StatusInternalServerError, `{"message":"boom"}`, MsgRunFailed},
		{"non-string error", http.StatusBadGateway, `{"error":{"code":1}}`, MsgRunFailed},
		{"empty error", http.StatusNotFound, `{"error":""}`, MsgRunFailed},
		{"not json", http.StatusServiceUnavailable, `<html>down</html>`, MsgRunFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				fmt.Fprint(w, tc.body)
			}))
			defer server.Close()

			_, err := NewClient(server.URL, time.Second).FetchRun(context.Background(), "run-1")
			require.Error(t, err)

			var fe *FetchError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tc.want, fe.Message)
			assert.Equal(t, tc.status, fe.Status)
		})
	}
}

func TestClientStatsFailuresAreGeneric(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":"database unavailable"}`)
	}))
	defer server.Close()

	_, err := NewClient(server.URL, time.Second).FetchStats(context.Background())
	require.Error(t, err)
	assert.Equal(t, MsgStatsFailed, err.Error())
}

func TestClientTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(url, time.Second)
	_, err := client.FetchStats(context.Background())
	require.Error(t, err)
	assert.Equal(t, MsgStatsFailed, err.Error())

	_, err = client.FetchRun(context.Background(), "run-4927")
	require.Error(t, err)
	assert.Equal(t, MsgRunFailed, err.Error())
}

func TestClientEscapesRunID(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":"Run not found"}`)
	}))
	defer server.Close()

	NewClient(server.URL, time.Second).FetchRun(context.Background(), "a/b c")
	assert.Equal(t, "/api/runs/a%2Fb%20c", gotPath)
}

func TestControllerOverHTTP(t *testing.T) {
	server := newFixtureServer(t)
	c := NewController(NewClient(server.URL, time.Second))
	c.Mount(context.Background())
	defer c.Unmount()
	waitDone(t, c)

	v := c.View()
	assert.Equal(t, PhaseSuccess, v.Stats.Phase())
	assert.Equal(t, PhaseSuccess, v.Run.Phase())
	assert.Equal(t, 64, v.ProgressPercent)
}
