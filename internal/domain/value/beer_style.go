package value

import (
	"fmt"
	"slices"

	"beer_service/internal/domain"
	"beer_service/pkg/errcodes"
)

type BeerStyle string

const (
	BeerStyleLager   BeerStyle = "LAGER"
	BeerStylePilsner BeerStyle = "PILSNER"
	BeerStyleStout   BeerStyle = "STOUT"
	BeerStyleGose    BeerStyle = "GOSE"
	BeerStylePorter  BeerStyle = "PORTER"
	BeerStyleAle     BeerStyle = "ALE"
	BeerStyleWheat   BeerStyle = "WHEAT"
	BeerStyleIPA     BeerStyle = "IPA"
	BeerStylePaleAle BeerStyle = "PALE_ALE"
	BeerStyleSaison  BeerStyle = "SAISON"
)

// BeerStyles returns the styles in declaration order.
func BeerStyles() []BeerStyle {
	return []BeerStyle{
		BeerStyleLager,
		BeerStylePilsner,
		BeerStyleStout,
		BeerStyleGose,
		BeerStylePorter,
		BeerStyleAle,
		BeerStyleWheat,
		BeerStyleIPA,
		BeerStylePaleAle,
		BeerStyleSaison,
	}
}

// ParseBeerStyle разбирает стиль, сохранённый в хранилище. Неизвестный стиль
// означает испорченные данные на стороне сервера, а не ошибку клиента.
func ParseBeerStyle(s string) (BeerStyle, error) {
	style := BeerStyle(s)

	if !slices.Contains(BeerStyles(), style) {
		return "", domain.NewError(errcodes.InvalidBeerStyle, fmt.Sprintf("unknown beer style %q", s))
	}

	return style, nil
}

func (s BeerStyle) String() string {
	return string(s)
}
