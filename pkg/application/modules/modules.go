// Package modules runs long-lived servers inside an errgroup and stops them
// when the application context is cancelled.
package modules

import "beer_service/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
