package persistence

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"beer_service/internal/domain/entity"
	"beer_service/pkg/logx"
)

const driverMemory = "memory"

// BeerMemoryRepository держит пиво в памяти процесса, записи не истекают.
type BeerMemoryRepository struct {
	mu    sync.Mutex
	beers *cache.Cache
	opts  options
}

func NewBeerMemoryRepository(opts ...Option) *BeerMemoryRepository {
	return &BeerMemoryRepository{
		beers: cache.New(cache.NoExpiration, 0),
		opts:  newOptions(opts),
	}
}

func (r *BeerMemoryRepository) FindByID(_ context.Context, id uuid.UUID) (entity.Beer, bool, error) {
	v, ok := r.beers.Get(id.String())
	if !ok {
		return entity.Beer{}, false, nil
	}

	beer, ok := v.(entity.Beer)

	return beer, ok, nil
}

// Save держит мьютекс между чтением и записью: go-cache не умеет
// compare-and-swap.
func (r *BeerMemoryRepository) Save(ctx context.Context, beer entity.Beer) (entity.Beer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, found, _ := r.FindByID(ctx, beer.ID)

	saved, err := r.opts.prepareSave(beer, stored, found)
	if err != nil {
		return entity.Beer{}, err
	}

	r.beers.Set(saved.ID.String(), saved, cache.NoExpiration)

	logger(ctx).Debug("beer saved",
		slog.String(logx.FieldBeerID, saved.ID.String()),
		slog.Int(logx.FieldBeerVersion, saved.Version),
		slog.String(logx.FieldStorageDriver, driverMemory),
	)

	return saved, nil
}

func (r *BeerMemoryRepository) Ping(context.Context) error {
	return nil
}
