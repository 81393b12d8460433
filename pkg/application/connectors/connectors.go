// Package connectors lazily opens the clients behind the beer stores. Client
// panics on connection failure: it is only called during startup.
package connectors

import "beer_service/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
