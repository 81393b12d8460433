package logx

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

var Error = tint.Err //nolint:gochecknoglobals

const (
	FormatText = "text"
	FormatJSON = "json"
)

func Stringer(name string, value fmt.Stringer) slog.Attr {
	return slog.String(name, value.String())
}

// NewHandler builds the process-wide handler: tint for humans, JSON for log
// shippers.
func NewHandler(w io.Writer, format string, level string) (slog.Handler, error) {
	var lvl slog.Level

	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("level.UnmarshalText: %w", err)
	}

	switch strings.ToLower(format) {
	case FormatText:
		return tint.NewHandler(w, &tint.Options{
			Level:      lvl,
			TimeFormat: time.DateTime,
		}), nil
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: lvl,
		}), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
