package middlewarex

import (
	"net/http"

	"github.com/rs/xid"

	"beer_service/pkg/contextx"
	"beer_service/pkg/httpx"
)

func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(httpx.HeaderTraceID)

		if traceID == "" {
			traceID = xid.New().String()
		}

		ctx := contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))

		w.Header().Set(httpx.HeaderTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
