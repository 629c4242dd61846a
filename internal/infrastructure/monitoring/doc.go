/*
Package monitoring provides Prometheus-based metrics collection.

Tracked series cover the HTTP surface (request counts, latency), the
catalog subsystem (cache hits/misses per cache, upstream call outcomes and
latency), chat activity, WebSocket connections, and process uptime.

Usage:

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
*/
package monitoring
