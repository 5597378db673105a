package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/k1rasov/GMP-BookingService/pkg/metrics"
)

// statusWriter перехватывает код ответа для метрик
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Metrics собирает метрики HTTP запросов. В качестве метки пути используется
// шаблон маршрута, а не сырой URL, чтобы не раздувать кардинальность
func Metrics(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tmpl, err := route.GetPathTemplate(); err == nil {
					path = tmpl
				}
			}

			m.ObserveHTTPRequest(r.Method, path, sw.status, time.Since(start))
		})
	}
}
