// Package handler exposes the proxy's HTTP API: one thin gin handler
// per endpoint, each running the same sequence of throttle, parameter
// parsing, service call and envelope write.
package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// APIV1Prefix is the canonical base path for the public HTTP API v1.
// Keep a single source of truth to avoid path drift across handlers and tests.
const APIV1Prefix = "/api/v1"

// Register mounts all routes on the given engine.
func Register(r *gin.Engine, api *API, pinger Pinger) {
	h := NewHealthHandler(pinger)
	r.GET("/health", h.Liveness)
	r.GET("/health/ready", h.Readiness)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api.Register(r.Group(APIV1Prefix))
}
