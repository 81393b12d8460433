package tests

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"beer_service/pkg/rest"
)

var beerStyles = []rest.BeerStyle{ //nolint:gochecknoglobals
	"LAGER", "PILSNER", "STOUT", "GOSE", "PORTER", "ALE", "WHEAT", "IPA", "PALE_ALE", "SAISON",
}

// Randomizer выдаёт случайные, но валидные значения полей пива.
type Randomizer struct {
	Intn func(n int) int
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // for tests

	return Randomizer{
		Intn: random.Intn,
	}
}

func (r Randomizer) BeerName() string {
	return fmt.Sprintf("Beer #%d", r.Intn(1_000_000))
}

func (r Randomizer) BeerStyle() rest.BeerStyle {
	return beerStyles[r.Intn(len(beerStyles))]
}

// Price от 0.00 до 99.99 с двумя знаками.
func (r Randomizer) Price() decimal.Decimal {
	return decimal.New(int64(r.Intn(10_000)), -2) //nolint:mnd // skip
}

func (r Randomizer) UPC() int64 {
	return 100_000_000_000 + int64(r.Intn(900_000_000)) //nolint:mnd // skip
}

// Beer returns a request body that passes validation.
func (r Randomizer) Beer() rest.Beer {
	price := r.Price()

	return rest.Beer{
		BeerName:  r.BeerName(),
		BeerStyle: r.BeerStyle(),
		UPC:       r.UPC(),
		Price:     &price,
		MinOnHand: r.Intn(100), //nolint:mnd // skip
	}
}
