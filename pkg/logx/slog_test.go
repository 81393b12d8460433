package logx_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"beer_service/pkg/logx"
)

func TestNewHandler(t *testing.T) {
	testCases := []struct {
		name     string
		format   string
		level    string
		wantErr  bool
		contains string
	}{
		{name: "Text", format: logx.FormatText, level: "info", contains: "beer saved"},
		{name: "JSON", format: logx.FormatJSON, level: "debug", contains: `"msg":"beer saved"`},
		{name: "Unknown format", format: "xml", level: "info", wantErr: true},
		{name: "Unknown level", format: logx.FormatText, level: "loud", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			var buf bytes.Buffer

			handler, err := logx.NewHandler(&buf, tc.format, tc.level)
			if tc.wantErr {
				rq.Error(err)

				return
			}

			rq.NoError(err)

			slog.New(handler).Info("beer saved", slog.String(logx.FieldBeerID, "42"))
			rq.Contains(buf.String(), tc.contains)
		})
	}
}

func TestNewHandlerLevelFilter(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	handler, err := logx.NewHandler(&buf, logx.FormatJSON, "warn")
	rq.NoError(err)

	slog.New(handler).Info("hidden")
	rq.Empty(buf.String())
}
