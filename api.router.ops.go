package main

import (
	"net/http"
	"net/http/pprof"

	"github.com/julienschmidt/httprouter"
)

// SetupOpsRoutes injects internal operations related endpoints. They live
// under the api prefix so they never shadow more of the static files.
func (api *APIHandler) SetupOpsRoutes(router *httprouter.Router, m *MiddlewareMap) *httprouter.Router {
	router.GET("/api/ops/configs", m.ops(api.GetConfigs))
	router.GET("/api/ops/stats", m.ops(api.GetStatistics))
	router.GET("/api/ops/maintenance", m.ops(api.Maintenance))
	router.GET("/api/ops/debug/vars", m.ops(GetMemStats))
	router.GET("/api/ops/debug/gc", m.ops(api.RunGC))
	router.GET("/api/ops/debug/fos", m.ops(api.FreeOSMemory))

	if api.config.ProfilerEndpointsEnable {
		router.GET("/api/ops/debug/pprof/", m.ops(api.OpsHandlerWrapper(http.HandlerFunc(pprof.Index))))
		router.GET("/api/ops/debug/pprof/profile", m.ops(api.GetCPUProfile))
		router.GET("/api/ops/debug/pprof/trace", m.ops(api.GetTraceProfile))
		router.GET("/api/ops/debug/pprof/symbol", m.ops(api.GetSymbol))
		router.GET("/api/ops/debug/pprof/cmdline", m.ops(api.GetCmdLine))
		router.GET("/api/ops/debug/pprof/heap", m.ops(api.OpsHandlerWrapper(pprof.Handler("heap"))))
		router.GET("/api/ops/debug/pprof/allocs", m.ops(api.OpsHandlerWrapper(pprof.Handler("allocs"))))
		router.GET("/api/ops/debug/pprof/goroutine", m.ops(api.OpsHandlerWrapper(pprof.Handler("goroutine"))))
		router.GET("/api/ops/debug/pprof/threadcreate", m.ops(api.OpsHandlerWrapper(pprof.Handler("threadcreate"))))
		router.GET("/api/ops/debug/pprof/block", m.ops(api.OpsHandlerWrapper(pprof.Handler("block"))))
		router.GET("/api/ops/debug/pprof/mutex", m.ops(api.OpsHandlerWrapper(pprof.Handler("mutex"))))
	}

	return router
}
