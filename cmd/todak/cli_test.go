package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":5,"loginId":"alice","nickname":"Al","startDate":"2024-05-01","hasSeenGuide":false},"token":"tok"}`))
	})
	mux.HandleFunc("/api/check-id", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("loginId") == "alice" {
			_, _ = w.Write([]byte(`{"available":false}`))
			return
		}
		_, _ = w.Write([]byte(`{"available":true}`))
	})
	mux.HandleFunc("/api/moods", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer tok" || r.URL.Query().Get("userId") != "5" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"code":401,"message":"로그인이 필요해요."}`))
			return
		}
		_, _ = w.Write([]byte(`[{"id":1,"date":"2024-05-15","emotionIds":["happy","calm"],"content":"좋은 날"}]`))
	})
	mux.HandleFunc("/api/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCLILoginListLogout(t *testing.T) {
	srv := stubServer(t)
	session := filepath.Join(t.TempDir(), "session.json")
	common := []string{"--server", srv.URL + "/api", "--session", session}

	out, err := run(t, append([]string{"login", "--id", "alice", "--password", "pw"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Al")

	out, err = run(t, append([]string{"whoami"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, `"loginId": "alice"`)

	out, err = run(t, append([]string{"mood", "list"}, common...)...)
	require.NoError(t, err)
	assert.Equal(t, "#1 2024-05-15 [happy,calm] 좋은 날\n", out)

	_, err = run(t, append([]string{"logout"}, common...)...)
	require.NoError(t, err)

	_, err = run(t, append([]string{"mood", "list"}, common...)...)
	assert.Error(t, err)
}

func TestCLICheckID(t *testing.T) {
	srv := stubServer(t)
	common := []string{"--server", srv.URL + "/api", "--session", filepath.Join(t.TempDir(), "s.json")}

	out, err := run(t, append([]string{"check-id", "alice"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "이미 사용 중인 아이디예요.")

	out, err = run(t, append([]string{"check-id", "bob"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "사용 가능한 아이디예요.")
}

func TestCLIDeleteAccountNeedsConfirm(t *testing.T) {
	_, err := run(t, "delete-account", "--session", filepath.Join(t.TempDir(), "s.json"))
	assert.ErrorContains(t, err, "--yes")
}
