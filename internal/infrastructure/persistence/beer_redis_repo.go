package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"beer_service/internal/domain"
	"beer_service/internal/domain/entity"
	"beer_service/pkg/errcodes"
	"beer_service/pkg/logx"
)

const (
	driverRedis    = "redis"
	beerKeyPrefix  = "beer:"
	redisSaveTries = 3
)

// BeerRedisRepository хранит пиво JSON-строками по ключу beer:<id>.
type BeerRedisRepository struct {
	client *redis.Client
	opts   options
}

func NewBeerRedisRepository(client *redis.Client, opts ...Option) *BeerRedisRepository {
	return &BeerRedisRepository{
		client: client,
		opts:   newOptions(opts),
	}
}

func beerKey(id uuid.UUID) string {
	return beerKeyPrefix + id.String()
}

func (r *BeerRedisRepository) FindByID(ctx context.Context, id uuid.UUID) (entity.Beer, bool, error) {
	return r.get(ctx, r.client, id)
}

// Save читает и пишет ключ под WATCH. Если ключ поменяли между чтением и
// EXEC, попытка повторяется и тогда уже видит новую версию.
func (r *BeerRedisRepository) Save(ctx context.Context, beer entity.Beer) (entity.Beer, error) {
	// Ключ нужен до WATCH, поэтому идентификатор новому пиву выдаётся заранее.
	if beer.IsNew() {
		beer.ID = uuid.New()
	}

	key := beerKey(beer.ID)

	var saved entity.Beer

	txf := func(tx *redis.Tx) error {
		stored, found, err := r.get(ctx, tx, beer.ID)
		if err != nil {
			return err
		}

		saved, err = r.opts.prepareSave(beer, stored, found)
		if err != nil {
			return err
		}

		data, err := json.Marshal(saved)
		if err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)

			return nil
		})

		return err //nolint:wrapcheck
	}

	for range redisSaveTries {
		err := r.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		if err != nil {
			if domain.IsStaleBeer(err) {
				return entity.Beer{}, err
			}

			return entity.Beer{}, domain.WrapError(err, errcodes.InternalServerError, "failed to save beer")
		}

		logger(ctx).Debug("beer saved",
			slog.String(logx.FieldBeerID, saved.ID.String()),
			slog.Int(logx.FieldBeerVersion, saved.Version),
			slog.String(logx.FieldStorageDriver, driverRedis),
		)

		return saved, nil
	}

	return entity.Beer{}, fmt.Errorf("beer %s: %w", beer.ID, domain.ErrStaleBeer)
}

func (r *BeerRedisRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("client.Ping: %w", err)
	}

	return nil
}

type redisGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (r *BeerRedisRepository) get(ctx context.Context, c redisGetter, id uuid.UUID) (entity.Beer, bool, error) {
	data, err := c.Get(ctx, beerKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.Beer{}, false, nil
	}

	if err != nil {
		return entity.Beer{}, false, domain.WrapError(err, errcodes.InternalServerError, "failed to get beer")
	}

	var beer entity.Beer
	if err = json.Unmarshal(data, &beer); err != nil {
		return entity.Beer{}, false, domain.WrapError(err, errcodes.InternalServerError, "failed to decode beer")
	}

	return beer, true, nil
}
