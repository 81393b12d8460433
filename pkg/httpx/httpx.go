// Package httpx holds client and server side HTTP helpers shared by the
// service and its tests.
package httpx

import "beer_service/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
