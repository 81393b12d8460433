package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"beer_service/pkg/httpx/reply"
	"beer_service/pkg/middlewarex"
)

// Router собирает цепочку middleware и маршруты API.
func (s Server) Router(metrics middlewarex.Metrics, httpLogging middlewarex.HTTPLogging) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		metrics.Handler,
		middlewarex.Recovery,
		httpLogging.Request,
		httpLogging.Response,
	)

	s.RegisterRoutes(r)

	return r
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Route("/beer", func(r chi.Router) {
				r.Post("/", handler(s.postV1Beer))
				r.Get("/{beerId}", handler(s.getV1Beer))
				r.Put("/{beerId}", handler(s.putV1Beer))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
