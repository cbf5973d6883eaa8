package main

import (
	"github.com/julienschmidt/httprouter"
)

// SetupBookRoutes injects the health check and book related endpoints.
func (api *APIHandler) SetupBookRoutes(router *httprouter.Router, m *MiddlewareMap) *httprouter.Router {
	router.GET("/api/health", m.probe(api.Health))
	router.HEAD("/api/health", m.probe(api.Health))
	router.GET("/books/:id", m.public(api.GetOneBook))
	return router
}
