package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "asistencia_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "asistencia_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	registrosTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "asistencia_registros_total",
		Help: "Attendance record attempts by result",
	}, []string{"resultado"})

	reportesDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "asistencia_reportes_duration_seconds",
		Help:    "Duration of report generation",
		Buckets: prometheus.DefBuckets,
	}, []string{"resultado"})
)

// Resultados de un intento de registro de asistencia.
const (
	ResultadoOK        = "ok"
	ResultadoDuplicado = "duplicado"
	ResultadoInvalido  = "invalido"
	ResultadoError     = "error"
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveRegistro cuenta un intento de registro de asistencia.
func ObserveRegistro(resultado string) {
	registrosTotal.WithLabelValues(resultado).Inc()
}

// ObserveReporte mide la generación de un reporte.
func ObserveReporte(resultado string, duration time.Duration) {
	reportesDuration.WithLabelValues(resultado).Observe(duration.Seconds())
}

// Middleware instruments requests using the route template as path label.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		path := c.Route().Path
		if status == fiber.StatusNotFound && path == "/" {
			path = "unmatched"
		}
		ObserveHTTPRequest(c.Method(), path, strconv.Itoa(status), time.Since(start))
		return err
	}
}

// Handler expone el registro por defecto de Prometheus.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
