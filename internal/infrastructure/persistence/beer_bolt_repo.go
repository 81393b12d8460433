package persistence

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/boltdb/bolt"
	"github.com/google/uuid"

	"beer_service/internal/domain"
	"beer_service/internal/domain/entity"
	"beer_service/pkg/errcodes"
	"beer_service/pkg/logx"
)

const driverBolt = "bolt"

var beersBucket = []byte("beers") //nolint:gochecknoglobals

// BeerBoltRepository хранит пиво в файле bolt, ключ бакета beers это байты
// UUID. Пишущие транзакции bolt сериализуются, отдельная блокировка не нужна.
type BeerBoltRepository struct {
	db   *bolt.DB
	opts options
}

func NewBeerBoltRepository(db *bolt.DB, opts ...Option) (*BeerBoltRepository, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(beersBucket)

		return err //nolint:wrapcheck
	})
	if err != nil {
		return nil, fmt.Errorf("db.Update(create bucket): %w", err)
	}

	return &BeerBoltRepository{
		db:   db,
		opts: newOptions(opts),
	}, nil
}

func (r *BeerBoltRepository) FindByID(_ context.Context, id uuid.UUID) (entity.Beer, bool, error) {
	var (
		beer  entity.Beer
		found bool
	)

	err := r.db.View(func(tx *bolt.Tx) error {
		var err error

		beer, found, err = getBoltBeer(tx, id)

		return err
	})
	if err != nil {
		return entity.Beer{}, false, domain.WrapError(err, errcodes.InternalServerError, "failed to get beer")
	}

	return beer, found, nil
}

func (r *BeerBoltRepository) Save(ctx context.Context, beer entity.Beer) (entity.Beer, error) {
	var saved entity.Beer

	err := r.db.Update(func(tx *bolt.Tx) error {
		stored, found, err := getBoltBeer(tx, beer.ID)
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

		return tx.Bucket(beersBucket).Put(saved.ID[:], data) //nolint:wrapcheck
	})
	if err != nil {
		if domain.IsStaleBeer(err) {
			return entity.Beer{}, err
		}

		return entity.Beer{}, domain.WrapError(err, errcodes.InternalServerError, "failed to save beer")
	}

	logger(ctx).Debug("beer saved",
		slog.String(logx.FieldBeerID, saved.ID.String()),
		slog.Int(logx.FieldBeerVersion, saved.Version),
		slog.String(logx.FieldStorageDriver, driverBolt),
	)

	return saved, nil
}

func (r *BeerBoltRepository) Ping(context.Context) error {
	return r.db.View(func(tx *bolt.Tx) error { //nolint:wrapcheck
		if tx.Bucket(beersBucket) == nil {
			return fmt.Errorf("bucket %s is missing", beersBucket)
		}

		return nil
	})
}

func getBoltBeer(tx *bolt.Tx, id uuid.UUID) (entity.Beer, bool, error) {
	if id == uuid.Nil {
		return entity.Beer{}, false, nil
	}

	data := tx.Bucket(beersBucket).Get(id[:])
	if data == nil {
		return entity.Beer{}, false, nil
	}

	var beer entity.Beer
	if err := json.Unmarshal(data, &beer); err != nil {
		return entity.Beer{}, false, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return beer, true, nil
}
