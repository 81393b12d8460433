package reply_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"beer_service/pkg/contextx"
	"beer_service/pkg/errcodes"
	"beer_service/pkg/httpx/reply"
	"beer_service/pkg/httpx/req"
	"beer_service/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func TestError(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		statusCode int
		code       string
	}{
		{
			name: "Invalid argument",
			err: fmt.Errorf("value.ParseBeerID: %w", failure.NewInvalidArgumentError(
				"bad id",
				failure.WithCode(errcodes.InvalidBeerID),
			)),
			statusCode: http.StatusBadRequest,
			code:       "InvalidBeerID",
		},
		{
			name:       "Invalid argument without code",
			err:        failure.NewInvalidArgumentError("bad input"),
			statusCode: http.StatusBadRequest,
			code:       "ValidationError",
		},
		{
			name: "Not found",
			err: failure.NewNotFoundError(
				"beer not found",
				failure.WithCode(errcodes.BeerNotFound),
			),
			statusCode: http.StatusNotFound,
			code:       "BeerNotFound",
		},
		{
			name: "Conflict",
			err: failure.NewConflictError(
				"stale beer",
				failure.WithCode(errcodes.VersionConflict),
			),
			statusCode: http.StatusConflict,
			code:       "VersionConflict",
		},
		{
			name:       "Internal",
			err:        errors.New("connection refused"),
			statusCode: http.StatusInternalServerError,
			code:       "InternalServerError",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			ctx := contextx.WithTraceID(context.Background(), "trace-1")
			w := httptest.NewRecorder()

			reply.Error(ctx, w, tc.err)

			rq.Equal(tc.statusCode, w.Code)
			rq.Equal("application/json; charset=utf-8", w.Header().Get("Content-Type"))

			var body rest.Error

			rq.NoError(json.Unmarshal(w.Body.Bytes(), &body))
			rq.Equal(tc.code, string(body.Code))
			rq.Equal("trace-1", body.SupportID)
			rq.Empty(body.Fields)
		})
	}
}

func TestErrorValidationFields(t *testing.T) {
	rq := require.New(t)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/beer", strings.NewReader(`{"beerStyle":"ALE","price":1,"upc":1}`))

	var dest rest.Beer

	err := req.Read(r, &dest)
	rq.Error(err)

	w := httptest.NewRecorder()

	reply.Error(context.Background(), w, fmt.Errorf("req.Read: %w", err))

	rq.Equal(http.StatusBadRequest, w.Code)

	var body rest.Error

	rq.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	rq.Equal("ValidationError", string(body.Code))
	rq.Equal("unsupported", body.SupportID)
	rq.Equal([]rest.FieldError{{Field: "beerName", Message: "must not be blank"}}, body.Fields)
}

func TestStatusOnly(t *testing.T) {
	rq := require.New(t)

	for statusCode, write := range map[int]func(http.ResponseWriter){
		http.StatusOK:        reply.OK,
		http.StatusCreated:   reply.Created,
		http.StatusNoContent: reply.NoContent,
	} {
		w := httptest.NewRecorder()
		write(w)

		rq.Equal(statusCode, w.Code)
		rq.Zero(w.Body.Len())
	}
}
