package middlewarex

import (
	"log/slog"
	"net/http"

	"beer_service/pkg/contextx"
	"beer_service/pkg/logx"
)

// Logger puts a request-scoped logger into the context. Must run after TraceID.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		attrs := []any{
			slog.String(logx.FieldURL, r.URL.Path),
			slog.String(logx.FieldHTTPMethod, r.Method),
			slog.String(logx.FieldIP, r.RemoteAddr),
		}

		traceID, err := contextx.TraceIDFromContext(ctx)
		if err != nil {
			logger(ctx).Warn("contextx.TraceIDFromContext", logx.Error(err))
		} else {
			attrs = append(attrs, logx.Stringer(logx.FieldTraceID, traceID))
		}

		ctx = contextx.WithLogger(ctx, logger(ctx).With(attrs...))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
