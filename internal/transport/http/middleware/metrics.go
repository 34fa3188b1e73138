package middleware

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// httpRequestsTotal — счётчик обработанных HTTP-запросов.
// Лейбл route — шаблон chi-маршрута, а не сырой путь, чтобы не раздувать
// кардинальность на слагах.
var httpRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "community_http_requests_total",
		Help: "Total number of handled HTTP requests.",
	},
	[]string{"method", "route", "status"},
)

// Metrics инкрементирует счётчик запросов по завершении обработки.
// Должен стоять внутри роутера chi, иначе шаблон маршрута недоступен.
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r)

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}

			status := sw.status
			if status == 0 {
				status = http.StatusOK
			}

			httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		})
	}
}
