package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDCheckerDebounce(t *testing.T) {
	var hits atomic.Int32
	var mu sync.Mutex
	var lastQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		mu.Lock()
		lastQuery = r.URL.Query().Get("loginId")
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"available":true}`))
	}))
	defer srv.Close()

	checker := NewIDChecker(New(srv.URL), 50*time.Millisecond)
	done := make(chan string, 3)
	for _, id := range []string{"a", "al", "ali"} {
		id := id
		checker.Check(context.Background(), id, func(available bool, err error) {
			assert.NoError(t, err)
			assert.True(t, available)
			done <- id
		})
	}

	select {
	case got := <-done:
		assert.Equal(t, "ali", got)
	case <-time.After(2 * time.Second):
		t.Fatal("debounced check never ran")
	}

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), hits.Load())
	mu.Lock()
	assert.Equal(t, "ali", lastQuery)
	mu.Unlock()
	assert.Empty(t, done)
}

func TestIDCheckerStop(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"available":true}`))
	}))
	defer srv.Close()

	checker := NewIDChecker(New(srv.URL), 30*time.Millisecond)
	called := make(chan struct{}, 1)
	checker.Check(context.Background(), "alice", func(bool, error) { called <- struct{}{} })
	checker.Stop()

	time.Sleep(100 * time.Millisecond)
	require.Zero(t, hits.Load())
	assert.Empty(t, called)
}
