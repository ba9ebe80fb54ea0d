package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Logger writes one structured slog record per request. Responses with a
// 5xx status are logged at error level as REQUEST_ERROR.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				attrs := []slog.Attr{
					slog.String("method", r.Method),
					slog.String("uri", r.RequestURI),
					slog.Int("status", status),
					slog.Int("bytes", ww.BytesWritten()),
					slog.Duration("latency", time.Since(start)),
					slog.String("remote_ip", r.RemoteAddr),
				}
				if id := GetRequestID(r.Context()); id != "" {
					attrs = append(attrs, slog.String("request_id", id))
				}

				if status >= http.StatusInternalServerError {
					logger.LogAttrs(r.Context(), slog.LevelError, "REQUEST_ERROR", attrs...)
					return
				}
				logger.LogAttrs(r.Context(), slog.LevelInfo, "REQUEST", attrs...)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
