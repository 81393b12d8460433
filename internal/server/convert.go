package server

import (
	"fmt"

	"github.com/shopspring/decimal"

	"beer_service/internal/domain/entity"
	"beer_service/internal/domain/value"
	"beer_service/pkg/rest"
)

func newRESTBeer(beer entity.Beer) (rest.Beer, error) {
	style, err := value.ParseBeerStyle(beer.BeerStyle)
	if err != nil {
		return rest.Beer{}, fmt.Errorf("value.ParseBeerStyle: %w", err)
	}

	id := beer.ID.String()
	createdDate := beer.CreatedDate
	lastModifiedDate := beer.LastModifiedDate
	price := beer.Price

	return rest.Beer{
		ID:               &id,
		Version:          &beer.Version,
		CreatedDate:      &createdDate,
		LastModifiedDate: &lastModifiedDate,
		BeerName:         beer.BeerName,
		BeerStyle:        rest.BeerStyle(style),
		UPC:              beer.UPC,
		Price:            &price,
		MinOnHand:        beer.MinOnHand,
		QuantityToBrew:   &beer.QuantityToBrew,
	}, nil
}

// newDomainBeer переносит только поля, которые задаёт клиент. Идентификатор,
// версия, даты и quantityToBrew принадлежат хранилищу.
func newDomainBeer(beer rest.Beer) entity.Beer {
	price := decimal.Zero
	if beer.Price != nil {
		price = *beer.Price
	}

	return entity.Beer{
		BeerName:  beer.BeerName,
		BeerStyle: string(beer.BeerStyle),
		UPC:       beer.UPC,
		Price:     price,
		MinOnHand: beer.MinOnHand,
	}
}
