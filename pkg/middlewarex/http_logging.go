package middlewarex

import (
	"bytes"
	"cmp"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/zenazn/goji/web/mutil"

	"beer_service/pkg/logx"
)

// HTTPLogging dumps every request and response of the API. Dumps pass through
// the masker and are cut to maxLen bytes.
type HTTPLogging struct {
	masker logx.SensitiveDataMaskerInterface
	maxLen int
}

func NewHTTPLogging(masker logx.SensitiveDataMaskerInterface, maxLen int) HTTPLogging {
	return HTTPLogging{
		masker: masker,
		maxLen: maxLen,
	}
}

func (l HTTPLogging) Request(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		dumpBody := !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")

		dump, err := httputil.DumpRequest(r, dumpBody)

		logger(ctx).Info(
			logx.FieldHTTPRequest,
			slog.String(logx.FieldRequestBody, string(l.masker.Mask(l.truncate(dump)))),
			logx.Error(err),
		)

		next.ServeHTTP(w, r)
	})
}

// Response wraps the writer with mutil to tee the body.
// The trouble with optional interfaces:
// https://blog.merovius.de/posts/2017-07-30-the-trouble-with-optional-interfaces/
func (l HTTPLogging) Response(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		start := time.Now()
		lw := mutil.WrapWriter(w)

		var buf bytes.Buffer

		lw.Tee(&buf)

		next.ServeHTTP(lw, r)

		headers, err := responseHeaders(w)
		if err != nil {
			logger(ctx).Error("responseHeaders", logx.Error(err))
		}

		// lw.Status() is 0 when the handler never called WriteHeader.
		status := cmp.Or(lw.Status(), http.StatusOK)

		logger(ctx).Info(
			logx.FieldHTTPResponse,
			slog.Int(logx.FieldResponseStatus, status),
			slog.String(logx.FieldResponseHeaders, string(l.masker.Mask(headers))),
			slog.String(logx.FieldResponseBody, string(l.masker.Mask(l.truncate(buf.Bytes())))),
			slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
		)
	})
}

func (l HTTPLogging) truncate(dump []byte) []byte {
	if l.maxLen > 0 && len(dump) > l.maxLen {
		return dump[:l.maxLen]
	}

	return dump
}

func responseHeaders(w http.ResponseWriter) ([]byte, error) {
	var buf bytes.Buffer

	if err := w.Header().WriteSubset(&buf, nil); err != nil {
		return nil, fmt.Errorf("header.WriteSubset: %w", err)
	}

	return buf.Bytes(), nil
}
