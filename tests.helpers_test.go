package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestAPIHandler returns an api handler built with mocks and the real book service.
func newTestAPIHandler(config *Config) *APIHandler {
	return NewAPIHandler(
		zap.NewNop(),
		config,
		&Statistics{started: NewMockClocker().Now()},
		NewMockClocker(),
		NewMockUIDHandler("abc"),
		NewBookService(zap.NewNop()),
	)
}

// newTestRouter wires all routes with the real middlewares stacks.
func newTestRouter(api *APIHandler) *httprouter.Router {
	return api.SetupRoutes(httprouter.New(), api.MiddlewareMap())
}

// emptyMiddlewareMap skips all middlewares.
func emptyMiddlewareMap() *MiddlewareMap {
	return &MiddlewareMap{
		public: (&Middlewares{}).Chain,
		probe:  (&Middlewares{}).Chain,
		ops:    (&Middlewares{}).Chain,
	}
}

// writeAssets creates the given files (relative path -> content) under a fresh folder.
func writeAssets(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}
