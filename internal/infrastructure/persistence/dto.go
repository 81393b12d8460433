package persistence

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"beer_service/internal/domain/entity"
)

// beerSchema строка таблицы beers.
type beerSchema struct {
	ID               uuid.UUID       `db:"id"`
	Version          int             `db:"version"`
	CreatedDate      time.Time       `db:"created_date"`
	LastModifiedDate time.Time       `db:"last_modified_date"`
	BeerName         string          `db:"beer_name"`
	BeerStyle        string          `db:"beer_style"`
	UPC              int64           `db:"upc"`
	Price            decimal.Decimal `db:"price"`
	MinOnHand        int             `db:"min_on_hand"`
	QuantityToBrew   int             `db:"quantity_to_brew"`
}

func newBeerSchema(b entity.Beer) beerSchema {
	return beerSchema{
		ID:               b.ID,
		Version:          b.Version,
		CreatedDate:      b.CreatedDate,
		LastModifiedDate: b.LastModifiedDate,
		BeerName:         b.BeerName,
		BeerStyle:        b.BeerStyle,
		UPC:              b.UPC,
		Price:            b.Price,
		MinOnHand:        b.MinOnHand,
		QuantityToBrew:   b.QuantityToBrew,
	}
}

func (s beerSchema) toDomain() entity.Beer {
	return entity.Beer{
		ID:               s.ID,
		Version:          s.Version,
		CreatedDate:      s.CreatedDate.UTC(),
		LastModifiedDate: s.LastModifiedDate.UTC(),
		BeerName:         s.BeerName,
		BeerStyle:        s.BeerStyle,
		UPC:              s.UPC,
		Price:            s.Price,
		MinOnHand:        s.MinOnHand,
		QuantityToBrew:   s.QuantityToBrew,
	}
}
