package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/cloutjet/admin-dashboard/pkg/apiErrors"
	"github.com/cloutjet/admin-dashboard/pkg/log"
)

const slowRequestThreshold = 500 * time.Millisecond

// LoggingMiddleware registra o início e o fim de cada requisição. O log de
// conclusão inclui os campos anotados durante a requisição com
// log.AddRequestField (sessão, falhas da API remota, ação executada).
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			ctx = log.WithRequestFields(ctx)
			r = r.WithContext(ctx)

			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			logRequestStart(r, correlationID)
			next.ServeHTTP(lrw, r)

			elapsed := time.Since(startTime)
			fields := log.RequestFields(ctx)
			fields["correlation_id"] = correlationID
			fields["method"] = r.Method
			fields["path"] = r.URL.Path
			fields["status_code"] = lrw.statusCode
			fields["duration_ms"] = elapsed.Milliseconds()

			logRequestEnd(fields, lrw.statusCode, elapsed)
		})
	}
}

func logRequestStart(r *http.Request, correlationID string) {
	if log.IsDevelopment() {
		log.L.WithFields(log.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Info("→ Iniciando requisição")
		return
	}

	log.L.WithFields(log.Fields{
		"correlation_id": correlationID,
		"remote_addr":    r.RemoteAddr,
		"method":         r.Method,
		"path":           r.URL.Path,
		"query":          r.URL.RawQuery,
		"user_agent":     r.UserAgent(),
		"origin":         r.Header.Get("Origin"),
		"content_length": r.ContentLength,
	}).Info("Requisição iniciada")
}

func logRequestEnd(fields log.Fields, status int, elapsed time.Duration) {
	logger := log.L.WithFields(fields)

	msg := "Requisição finalizada"
	if log.IsDevelopment() {
		symbol := "✓"
		if status >= http.StatusBadRequest {
			symbol = "✗"
		}
		msg = fmt.Sprintf("%s Completada em %s", symbol, formatDuration(elapsed))
	}

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error(msg)
	case status >= http.StatusBadRequest:
		logger.Warn(msg)
	default:
		logger.Info(msg)
	}

	// páginas buscam a API remota no caminho da requisição
	if elapsed > slowRequestThreshold {
		logger.Warnf("Requisição lenta: %s", formatDuration(elapsed))
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter captura o status code escrito pelo handler
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware recupera panics dos handlers e responde com o erro
// padrão da API
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				err := recover()
				if err == nil {
					return
				}

				stack := make([]byte, 4096)
				stackTrace := string(stack[:runtime.Stack(stack, false)])

				logger := log.ForContext(r.Context()).WithFields(log.Fields{
					"error":  fmt.Sprint(err),
					"method": r.Method,
					"path":   r.URL.Path,
				})

				if log.IsDevelopment() {
					logger.Error("❌ PANIC na aplicação")
					fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
				} else {
					logger.WithField("stack_trace", stackTrace).Error("Erro não tratado na aplicação")
				}

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
