package seed

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticklist/internal/task"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func seedServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch(t *testing.T) {
	srv := seedServer(t, http.StatusOK, `[
		{"id": 1, "title": "delectus aut autem", "completed": false},
		{"id": 2, "title": "quis ut nam", "completed": true},
		{"id": 3, "title": "fugiat veniam minus", "completed": false, "userId": 1}
	]`)

	f := NewFetcher(srv.URL, time.Second, quietLogger())
	tasks, err := f.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, int64(1), tasks[0].ID)
	assert.Equal(t, "delectus aut autem", tasks[0].Title)
	assert.False(t, tasks[0].Completed)
	assert.Empty(t, tasks[0].CompletedTime)
	assert.True(t, tasks[1].Completed)
	assert.NotEmpty(t, tasks[1].CompletedTime)
}

func TestFetch_Non200(t *testing.T) {
	srv := seedServer(t, http.StatusInternalServerError, `oops`)

	f := NewFetcher(srv.URL, time.Second, quietLogger())
	_, err := f.Fetch(context.Background())

	assert.Error(t, err)
}

func TestFetch_InvalidJSON(t *testing.T) {
	srv := seedServer(t, http.StatusOK, `{not json`)

	f := NewFetcher(srv.URL, time.Second, quietLogger())
	_, err := f.Fetch(context.Background())

	assert.Error(t, err)
}

func TestFetch_SchemaRejectsWrongShape(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"object not array", `{"id": 1, "title": "x"}`},
		{"missing title", `[{"id": 1}]`},
		{"string id", `[{"id": "one", "title": "x"}]`},
		{"empty title", `[{"id": 1, "title": ""}]`},
		{"duplicate ids", `[{"id": 1, "title": "a"}, {"id": 1, "title": "b"}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := seedServer(t, http.StatusOK, tc.body)
			f := NewFetcher(srv.URL, time.Second, quietLogger())
			_, err := f.Fetch(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestFetch_NetworkFailure(t *testing.T) {
	srv := seedServer(t, http.StatusOK, `[]`)
	url := srv.URL
	srv.Close()

	f := NewFetcher(url, time.Second, quietLogger())
	_, err := f.Fetch(context.Background())

	assert.Error(t, err)
}

func TestLoad_ReplacesStore(t *testing.T) {
	srv := seedServer(t, http.StatusOK, `[{"id": 5, "title": "seeded", "completed": false}]`)

	store := task.NewStore()
	store.Add("pre-seed leftover")

	f := NewFetcher(srv.URL, time.Second, quietLogger())
	f.Load(context.Background(), store)

	got := store.List()
	require.Len(t, got, 1)
	assert.Equal(t, "seeded", got[0].Title)
}

func TestLoad_FailureLeavesStoreUntouched(t *testing.T) {
	srv := seedServer(t, http.StatusBadGateway, ``)

	store := task.NewStore()
	store.Add("manual task")

	f := NewFetcher(srv.URL, time.Second, quietLogger())
	f.Load(context.Background(), store)

	got := store.List()
	require.Len(t, got, 1)
	assert.Equal(t, "manual task", got[0].Title)

	// Still usable after the failed attempt.
	_, ok := store.Add("added after failure")
	assert.True(t, ok)
	assert.Equal(t, 2, store.Len())
}
