package middlewarex

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"beer_service/pkg/httpx/reply"
	"beer_service/pkg/logx"
)

// Recovery turns a panicking handler into a 500 with the regular error body so
// that clients still get a supportId.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler { //nolint:errorlint,err113
					panic(rec)
				}

				logger(ctx).Error(
					"panic in handler",
					slog.Any(logx.FieldError, rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				reply.Error(ctx, w, fmt.Errorf("panic: %v", rec)) //nolint:err113
			}
		}()

		next.ServeHTTP(w, r)
	})
}
