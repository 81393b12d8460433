// Package persistence содержит хранилища пива. Все реализации одинаково
// назначают идентификатор, версию и даты при сохранении.
package persistence

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"beer_service/internal/domain"
	"beer_service/internal/domain/entity"
	"beer_service/pkg/contextx"
)

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	logger = contextx.LoggerFromContextOrDefault          //nolint:gochecknoglobals
)

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock подменяет часы, по которым ставятся createdDate и lastModifiedDate.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func newOptions(opts []Option) options {
	o := options{now: time.Now}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// timestamp обрезан до микросекунд, точнее не хранят ни postgres, ни mysql.
func (o options) timestamp() time.Time {
	return o.now().UTC().Truncate(time.Microsecond)
}

// prepareSave вычисляет, что должно лечь в хранилище. stored и found описывают
// текущую запись с тем же идентификатором.
func (o options) prepareSave(beer, stored entity.Beer, found bool) (entity.Beer, error) {
	now := o.timestamp()

	switch {
	case beer.IsNew():
		beer.ID = uuid.New()
		fallthrough
	case !found:
		beer.Version = 0
		beer.CreatedDate = now
		beer.LastModifiedDate = now
	case stored.Version != beer.Version:
		return entity.Beer{}, fmt.Errorf(
			"beer %s has version %d, stored %d: %w", beer.ID, beer.Version, stored.Version, domain.ErrStaleBeer,
		)
	default:
		beer.Version = stored.Version + 1
		beer.CreatedDate = stored.CreatedDate
		beer.LastModifiedDate = now
	}

	return beer, nil
}
