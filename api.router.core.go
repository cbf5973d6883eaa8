package main

import (
	"net/http"
	"time"

	_ "github.com/jeamon/demo-bookshelf/docs"
	"github.com/julienschmidt/httprouter"
	httpswagger "github.com/swaggo/http-swagger/v2"
)

// MiddlewareMap contains middlwares chain to use for
// public-facing, health probes and ops requests.
type MiddlewareMap struct {
	public MiddlewareFunc
	probe  MiddlewareFunc
	ops    MiddlewareFunc
}

// SetupRoutes injects api endpoints then falls back to static files for
// any request no api route matched.
func (api *APIHandler) SetupRoutes(router *httprouter.Router, m *MiddlewareMap) *httprouter.Router {
	// api routes match exactly. Any other spelling, trailing slash or letter
	// case included, goes to the static files instead of being redirected.
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false
	router.NotFound = api.HandlerWrapper(m.public(api.StaticFiles))
	api.SetupBookRoutes(router, m)
	if api.config.OpsEndpointsEnable {
		api.SetupOpsRoutes(router, m)
	}
	if api.config.DocsEnable {
		router.GET("/api/docs/*any", m.ops(api.OpsHandlerWrapper(httpswagger.WrapHandler)))
	}
	return router
}

// HandlerWrapper exposes a httprouter.Handle as a http.Handler.
func (api *APIHandler) HandlerWrapper(h httprouter.Handle) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h(w, r, nil)
	})
}

// WithAPITimeout bounds the processing time of the api routes. Requests served
// by the static fallback are passed through so files are streamed instead of
// being buffered by http.TimeoutHandler.
func WithAPITimeout(router *httprouter.Router, timeout time.Duration) http.Handler {
	limited := http.TimeoutHandler(router, timeout, "Timeout. Processing taking too long.")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handle, _, _ := router.Lookup(r.Method, r.URL.Path); handle != nil {
			limited.ServeHTTP(w, r)
			return
		}
		router.ServeHTTP(w, r)
	})
}
