package req_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"beer_service/pkg/errcodes"
	"beer_service/pkg/httpx/req"
	"beer_service/pkg/rest"
)

func TestRead(t *testing.T) {
	testCases := []struct {
		name   string
		body   string
		fields []rest.FieldError
	}{
		{
			name:   "Valid beer",
			body:   `{"beerName":"Nice Ale","beerStyle":"ALE","price":9.99,"upc":123123123123,"minOnHand":2}`,
			fields: nil,
		},
		{
			name: "Price as string",
			body: `{"beerName":"Nice Ale","beerStyle":"ALE","price":"9.99","upc":123123123123}`,
		},
		{
			name: "Zero price is allowed",
			body: `{"beerName":"Free Ale","beerStyle":"ALE","price":0,"upc":1}`,
		},
		{
			name: "Blank name",
			body: `{"beerName":"","beerStyle":"ALE","price":9.99,"upc":123123123123}`,
			fields: []rest.FieldError{
				{Field: "beerName", Message: "must not be blank"},
			},
		},
		{
			name: "Whitespace name",
			body: `{"beerName":" \t ","beerStyle":"ALE","price":9.99,"upc":123123123123}`,
			fields: []rest.FieldError{
				{Field: "beerName", Message: "must not be blank"},
			},
		},
		{
			name: "Name too long",
			body: `{"beerName":"` + strings.Repeat("a", 101) + `","beerStyle":"ALE","price":9.99,"upc":1}`,
			fields: []rest.FieldError{
				{Field: "beerName", Message: "size must be at most 100"},
			},
		},
		{
			name: "Everything missing",
			body: `{}`,
			fields: []rest.FieldError{
				{Field: "beerName", Message: "must not be blank"},
				{Field: "beerStyle", Message: "must not be blank"},
				{Field: "upc", Message: "must not be null"},
				{Field: "price", Message: "must not be null"},
			},
		},
		{
			name: "Unknown style, negative price and min on hand",
			body: `{"beerName":"Nice Ale","beerStyle":"CIDER","price":-1,"upc":1,"minOnHand":-2}`,
			fields: []rest.FieldError{
				{Field: "beerStyle", Message: "must be one of [LAGER, PILSNER, STOUT, GOSE, PORTER, ALE, WHEAT, IPA, PALE_ALE, SAISON]"},
				{Field: "price", Message: "must be greater than or equal to 0"},
				{Field: "minOnHand", Message: "must be greater than or equal to 0"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/beer", strings.NewReader(tc.body))

			var dest rest.Beer

			err := req.Read(r, &dest)
			if tc.fields == nil {
				rq.NoError(err)

				return
			}

			rq.Error(err)
			rq.True(failure.IsInvalidArgumentError(err))
			rq.Equal(errcodes.ValidationError, failure.Code(err))

			var validationErr *req.ValidationError

			rq.True(errors.As(err, &validationErr))
			rq.Equal(tc.fields, validationErr.Fields)
		})
	}
}

func TestReadInvalidJSON(t *testing.T) {
	rq := require.New(t)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/beer", strings.NewReader(`{"beerName":`))

	var dest rest.Beer

	err := req.Read(r, &dest)
	rq.Error(err)
	rq.True(failure.IsInvalidArgumentError(err))
	rq.Equal("Invalid JSON", failure.Description(err))

	var validationErr *req.ValidationError

	rq.False(errors.As(err, &validationErr))
}
