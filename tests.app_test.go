package main

import (
	"bytes"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeAppConfig creates a config file which keeps logs and assets inside a temporary folder.
func writeAppConfig(t *testing.T, port string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	root := writeAssets(t, map[string]string{"index.html": "<html>home</html>"})
	yml := fmt.Sprintf("is_production: true\nlog_folder: %s\nserver:\n  host: 127.0.0.1\n  port: %q\nassets:\n  root: %s\n",
		filepath.Join(dir, "logs"), port, root)
	configFile := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(configFile, []byte(yml), 0o644))
	return configFile, filepath.Join(dir, "config.env")
}

// TestNewApp ensures the built server answers on all its routes.
func TestNewApp(t *testing.T) {
	configFile, envFile := writeAppConfig(t, "8000")
	provider, err := NewApp(configFile, envFile)
	require.NoError(t, err)
	app, ok := provider.(*App)
	require.True(t, ok)
	defer app.Clean()

	assert.Equal(t, "127.0.0.1:8000", app.server.Addr)

	testCases := []struct {
		path   string
		status int
		body   string
	}{
		{"/api/health", http.StatusOK, "OK"},
		{"/books/42", http.StatusOK, `{"id":42,"title":"Solaris","author":"Stanisław Lem"}`},
		{"/books/-1", http.StatusNotFound, ""},
		{"/", http.StatusOK, "<html>home</html>"},
		{"/nonexistent.html", http.StatusNotFound, ""},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			app.server.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.status, w.Code)
			switch {
			case strings.HasPrefix(tc.body, "{"):
				assert.JSONEq(t, tc.body, w.Body.String())
			case tc.body != "":
				assert.Equal(t, tc.body, w.Body.String())
			}
		})
	}
}

// TestAppRun_BindFailure ensures an address already in use stops the app with an error.
func TestAppRun_BindFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	configFile, envFile := writeAppConfig(t, port)
	app, err := NewApp(configFile, envFile)
	require.NoError(t, err)
	assert.Error(t, app.Run())
}

// TestNewApp_InvalidConfig ensures a broken config file prevents the start.
func TestNewApp_InvalidConfig(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configFile, []byte("server: [\n"), 0o644))
	_, err := NewApp(configFile, filepath.Join(t.TempDir(), "config.env"))
	assert.Error(t, err)
}

// TestVersionCommand ensures the build details are printed.
func TestVersionCommand(t *testing.T) {
	GitTag, GitCommit, BuildTime = "v1.0.0", "abc123", "2023-07-02"
	t.Cleanup(func() { GitTag, GitCommit, BuildTime = "", "", "" })

	buf := new(bytes.Buffer)
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "tag: v1.0.0\ncommit: abc123\nbuilt: 2023-07-02\n", buf.String())
}

// TestRootCommand_UnknownArgs ensures the server command takes no positional arguments.
func TestRootCommand_UnknownArgs(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--config", "missing.yml", "extra"})
	assert.Error(t, cmd.Execute())
}

// TestWithAPITimeout ensures slow api routes are cut while the static fallback
// writes directly to the connection.
func TestWithAPITimeout(t *testing.T) {
	var staticFlusher bool
	router := httprouter.New()
	router.GET("/books/:id", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		<-r.Context().Done()
	})
	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, staticFlusher = w.(http.Flusher)
		_, _ = w.Write([]byte("static"))
	})
	handler := WithAPITimeout(router, 20*time.Millisecond)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/books/1", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Timeout. Processing taking too long.", w.Body.String())

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app.js", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "static", w.Body.String())
	assert.True(t, staticFlusher)
}
