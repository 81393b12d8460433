package server

import "beer_service/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Server объединяет HTTP серверы отдельных сущностей. Пока сущность одна,
// пиво, но их может стать несколько.
type Server struct {
	BeerServer
}

func NewServer(
	beerServer BeerServer,
) Server {
	return Server{
		BeerServer: beerServer,
	}
}
