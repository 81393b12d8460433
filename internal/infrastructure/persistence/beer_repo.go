package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"beer_service/internal/domain"
	"beer_service/internal/domain/entity"
	"beer_service/pkg/errcodes"
	"beer_service/pkg/logx"
)

const beerColumns = `id, version, created_date, last_modified_date, beer_name, beer_style,
		upc, price, min_on_hand, quantity_to_brew`

// BeerRepository хранит пиво в postgres (pgx) или mysql через sqlx. Запросы
// пишутся с ? и переписываются под драйвер через Rebind.
type BeerRepository struct {
	db   *sqlx.DB
	opts options
}

func NewBeerRepository(db *sqlx.DB, opts ...Option) *BeerRepository {
	return &BeerRepository{
		db:   db,
		opts: newOptions(opts),
	}
}

// withTx выполняет функцию в транзакции.
func (r *BeerRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %w", err, rbErr),
				errcodes.InternalServerError,
				"transaction failed",
			)
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

func (r *BeerRepository) FindByID(ctx context.Context, id uuid.UUID) (entity.Beer, bool, error) {
	query := r.db.Rebind(`SELECT ` + beerColumns + ` FROM beers WHERE id = ?`)

	var schema beerSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Beer{}, false, nil
		}

		return entity.Beer{}, false, domain.WrapError(err, errcodes.InternalServerError, "failed to get beer")
	}

	return schema.toDomain(), true, nil
}

// Save вставляет или обновляет пиво. Строка блокируется на время проверки
// версии, а UPDATE дополнительно сверяет её в WHERE.
func (r *BeerRepository) Save(ctx context.Context, beer entity.Beer) (entity.Beer, error) {
	var saved entity.Beer

	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		stored, found, err := r.lockTx(ctx, tx, beer.ID)
		if err != nil {
			return err
		}

		saved, err = r.opts.prepareSave(beer, stored, found)
		if err != nil {
			return err
		}

		if !found {
			return r.insertTx(ctx, tx, saved)
		}

		return r.updateTx(ctx, tx, saved, stored.Version)
	})
	if err != nil {
		return entity.Beer{}, err
	}

	logger(ctx).Debug("beer saved",
		slog.String(logx.FieldBeerID, saved.ID.String()),
		slog.Int(logx.FieldBeerVersion, saved.Version),
		slog.String(logx.FieldStorageDriver, r.db.DriverName()),
	)

	return saved, nil
}

// Ping проверяет соединение для /ready.
func (r *BeerRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("db.PingContext: %w", err)
	}

	return nil
}

func (r *BeerRepository) lockTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (entity.Beer, bool, error) {
	if id == uuid.Nil {
		return entity.Beer{}, false, nil
	}

	query := tx.Rebind(`SELECT ` + beerColumns + ` FROM beers WHERE id = ? FOR UPDATE`)

	var schema beerSchema
	if err := tx.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Beer{}, false, nil
		}

		return entity.Beer{}, false, domain.WrapError(err, errcodes.InternalServerError, "failed to lock beer")
	}

	return schema.toDomain(), true, nil
}

func (r *BeerRepository) insertTx(ctx context.Context, tx *sqlx.Tx, beer entity.Beer) error {
	query := `
		INSERT INTO beers (` + beerColumns + `)
		VALUES (:id, :version, :created_date, :last_modified_date, :beer_name, :beer_style,
			:upc, :price, :min_on_hand, :quantity_to_brew)`

	if _, err := tx.NamedExecContext(ctx, query, newBeerSchema(beer)); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to insert beer")
	}

	return nil
}

func (r *BeerRepository) updateTx(ctx context.Context, tx *sqlx.Tx, beer entity.Beer, prevVersion int) error {
	query := tx.Rebind(`
		UPDATE beers
		SET version = ?, last_modified_date = ?, beer_name = ?, beer_style = ?,
			upc = ?, price = ?, min_on_hand = ?, quantity_to_brew = ?
		WHERE id = ? AND version = ?`)

	res, err := tx.ExecContext(ctx, query,
		beer.Version, beer.LastModifiedDate, beer.BeerName, beer.BeerStyle,
		beer.UPC, beer.Price, beer.MinOnHand, beer.QuantityToBrew,
		beer.ID, prevVersion,
	)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to update beer")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to check affected rows")
	}

	if rows == 0 {
		return fmt.Errorf("beer %s: %w", beer.ID, domain.ErrStaleBeer)
	}

	return nil
}
