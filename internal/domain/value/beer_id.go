package value

import (
	"git.appkode.ru/pub/go/failure"
	"github.com/google/uuid"

	"beer_service/pkg/errcodes"
)

func ParseBeerID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, failure.NewInvalidArgumentErrorFromError(
			err,
			failure.WithCode(errcodes.InvalidBeerID),
			failure.WithDescription("beerId must be a UUID"),
		)
	}

	return id, nil
}
