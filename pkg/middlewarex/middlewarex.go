// Package middlewarex contains the chi middleware chain of the public API:
// trace id, request-scoped logger, panic recovery, request/response dumps and
// Prometheus HTTP metrics.
package middlewarex

import "beer_service/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
