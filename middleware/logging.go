package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	customerrors "github.com/duacyd/analitica/customErrors"
)

type ctxKeyLog struct{}

// LoggingMiddleware attaches a request-scoped logrus entry (method,
// path, request id) to the context and logs start/completion.
func LoggingMiddleware(log *logrus.Logger) func(HandlerFunc) HandlerFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) error {
			start := time.Now()

			entry := log.WithFields(logrus.Fields{
				"http.req.method": r.Method,
				"http.req.path":   r.URL.Path,
				"http.req.id":     uuid.NewString(),
			})
			entry.Debug("request started")

			r = r.WithContext(context.WithValue(r.Context(), ctxKeyLog{}, entry))
			err := next(w, r)

			status := http.StatusOK
			if err != nil {
				status = customerrors.GetStatus(err)
			}
			entry.WithFields(logrus.Fields{
				"http.resp.status":  status,
				"http.resp.took_ms": int64(time.Since(start) / time.Millisecond),
			}).Info("request completed")

			return err
		}
	}
}

// LoggerFrom returns the request-scoped logger, or the standard logger
// when the request skipped the logging middleware.
func LoggerFrom(r *http.Request) logrus.FieldLogger {
	if entry, ok := r.Context().Value(ctxKeyLog{}).(logrus.FieldLogger); ok {
		return entry
	}
	return logrus.StandardLogger()
}
