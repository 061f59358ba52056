package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector exposed on /metrics
var Registry = prometheus.NewRegistry()

var (
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pss_http_requests_total",
		Help: "HTTP requests handled, by route and status.",
	}, []string{"method", "route", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pss_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	imagesDeleted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pss_images_deleted_total",
		Help: "Crop rows removed from the metadata store.",
	}, []string{"scope"})

	fileRemovals = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pss_image_files_removed_total",
		Help: "Crop file removal attempts, by result.",
	}, []string{"result"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpRequests,
		httpDuration,
		imagesDeleted,
		fileRemovals,
	)
}

// Handler serves the registry in the Prometheus text format
func Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}

// Middleware records request counts and latency per matched route
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// ImagesDeleted counts removed rows; scope is "image" or "cluster"
func ImagesDeleted(scope string, n int64) {
	if n > 0 {
		imagesDeleted.WithLabelValues(scope).Add(float64(n))
	}
}

// FileRemoved counts one removal attempt
func FileRemoved(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	fileRemovals.WithLabelValues(result).Inc()
}
