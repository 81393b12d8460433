package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"beer_service/internal/domain"
	"beer_service/internal/domain/entity"
	"beer_service/internal/domain/value"
	"beer_service/pkg/httpx/reply"
	"beer_service/pkg/httpx/req"
	"beer_service/pkg/logx"
	"beer_service/pkg/rest"
)

//go:generate moq -rm -out beer_repository_mock.gen.go . beerRepository:BeerRepositoryMock

type beerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (entity.Beer, bool, error)
	Save(ctx context.Context, beer entity.Beer) (entity.Beer, error)
}

type BeerServer struct {
	beerRepository beerRepository
}

func NewBeerServer(beerRepository beerRepository) BeerServer {
	return BeerServer{
		beerRepository: beerRepository,
	}
}

func (s BeerServer) getV1Beer(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := value.ParseBeerID(r.PathValue("beerId"))
	if err != nil {
		return fmt.Errorf("value.ParseBeerID: %w", err)
	}

	beer, found, err := s.beerRepository.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("beerRepository.FindByID: %w", err)
	}

	if !found {
		return fmt.Errorf("beer %s: %w", id, domain.ErrBeerNotFound)
	}

	response, err := newRESTBeer(beer)
	if err != nil {
		return fmt.Errorf("newRESTBeer: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, response)

	return nil
}

func (s BeerServer) postV1Beer(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.Beer

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	saved, err := s.beerRepository.Save(ctx, newDomainBeer(request))
	if err != nil {
		return fmt.Errorf("beerRepository.Save: %w", err)
	}

	logger(ctx).Info("beer saved",
		slog.String(logx.FieldBeerID, saved.ID.String()),
		slog.String(logx.FieldBeerName, saved.BeerName),
		slog.Int(logx.FieldBeerVersion, saved.Version),
	)

	response, err := newRESTBeer(saved)
	if err != nil {
		return fmt.Errorf("newRESTBeer: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, response)

	return nil
}

// putV1Beer переписывает имя, стиль, цену и UPC. Неизвестный идентификатор
// не ошибка: ответ тот же 204, сохранения нет.
func (s BeerServer) putV1Beer(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := value.ParseBeerID(r.PathValue("beerId"))
	if err != nil {
		return fmt.Errorf("value.ParseBeerID: %w", err)
	}

	var request rest.Beer

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	logger(ctx).Info("updating beer",
		slog.String(logx.FieldBeerID, id.String()),
		slog.String(logx.FieldBeerName, request.BeerName),
	)

	beer, found, err := s.beerRepository.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("beerRepository.FindByID: %w", err)
	}

	if !found {
		logger(ctx).Info("beer not found, nothing to update", slog.String(logx.FieldBeerID, id.String()))
		reply.NoContent(w)

		return nil
	}

	changes := newDomainBeer(request)
	beer.BeerName = changes.BeerName
	beer.BeerStyle = changes.BeerStyle
	beer.Price = changes.Price
	beer.UPC = changes.UPC

	if _, err = s.beerRepository.Save(ctx, beer); err != nil {
		return fmt.Errorf("beerRepository.Save: %w", err)
	}

	reply.NoContent(w)

	return nil
}
