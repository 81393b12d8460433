package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"beer_service/internal/domain"
	"beer_service/pkg/errcodes"
)

func TestAppError(t *testing.T) {
	rq := require.New(t)

	cause := errors.New("connection reset")
	err := fmt.Errorf("repo.Save: %w", domain.WrapError(cause, errcodes.InternalServerError, "failed to insert beer"))

	rq.ErrorIs(err, cause)
	rq.EqualError(err, "repo.Save: InternalServerError: failed to insert beer: connection reset")

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.InternalServerError, code)

	_, ok = domain.GetCode(cause)
	rq.False(ok)
}

func TestSentinelKinds(t *testing.T) {
	rq := require.New(t)

	stale := fmt.Errorf("repo.Save: %w", domain.ErrStaleBeer)
	rq.True(domain.IsStaleBeer(stale))
	rq.True(domain.IsStaleBeer(domain.ErrStaleBeer))
	rq.True(failure.IsConflictError(stale))

	rq.False(domain.IsStaleBeer(domain.ErrBeerNotFound))
	rq.False(domain.IsStaleBeer(errors.New("conflict")))
	rq.False(domain.IsStaleBeer(failure.NewConflictError("duplicate upc")))

	rq.True(failure.IsNotFoundError(domain.ErrBeerNotFound))
	rq.Equal(errcodes.BeerNotFound.String(), failure.Code(domain.ErrBeerNotFound).String())
}
