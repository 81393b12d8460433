package apidoc_test

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"beer_service/pkg/apidoc"
)

type beerRequest struct {
	ID        *string `json:"id"`
	BeerName  string  `json:"beerName"  validate:"notblank,max=100"`
	BeerStyle string  `json:"beerStyle" validate:"required,oneof=ALE IPA"`
	UPC       int64   `json:"upc"       validate:"required,gt=0"`
	Price     *string `json:"price"     validate:"required,gte=0"`
	MinOnHand int     `json:"minOnHand" validate:"gte=0"`
}

func newExchange(t *testing.T) apidoc.Exchange {
	t.Helper()

	u, err := url.Parse("http://127.0.0.1:41234/api/v1/beer/1b4e28ba-2fa1-11d2-883f-0016d3cca427")
	require.NoError(t, err)

	return apidoc.Exchange{
		Method: http.MethodPut,
		URL:    u,
		RequestHeader: http.Header{
			"Content-Type": {"application/json"},
			"X-Trace-Id":   {"random"},
		},
		RequestBody:    []byte(`{"id":null,"beerName":"Nice Ale","beerStyle":"ALE","upc":123,"price":"9.99","minOnHand":2}`),
		StatusCode:     http.StatusNoContent,
		ResponseHeader: http.Header{"Date": {"Sat, 18 Oct 2026 10:00:00 GMT"}},
	}
}

func TestConstraintDescriptions(t *testing.T) {
	rq := require.New(t)

	c := apidoc.NewConstraintDescriptions(beerRequest{})

	rq.Equal([]string{"Must not be blank", "Size must be at most 100"}, c.DescriptionsForProperty("beerName"))
	rq.Equal([]string{"Must not be blank", "Must be one of [ALE, IPA]"}, c.DescriptionsForProperty("beerStyle"))
	rq.Equal([]string{"Must not be null", "Must be positive"}, c.DescriptionsForProperty("upc"))
	rq.Equal([]string{"Must be zero or positive"}, c.DescriptionsForProperty("minOnHand"))
	rq.Empty(c.DescriptionsForProperty("id"))
}

func TestDocument(t *testing.T) {
	rq := require.New(t)

	dir := t.TempDir()
	fields := apidoc.NewConstrainedFields(&beerRequest{})

	err := apidoc.New(dir).Document("v1/beer-update", newExchange(t),
		apidoc.PathParameters("/api/v1/beer/{beerId}",
			apidoc.ParameterWithName("beerId").Description("UUID of desired beer to update."),
		),
		apidoc.RequestFields(
			fields.WithPath("id").Ignored(),
			fields.WithPath("beerName").Description("Name of the beer"),
			fields.WithPath("beerStyle").Description("Style of Beer"),
			fields.WithPath("upc").Description("Beer UPC"),
			fields.WithPath("price").Description("Beer Price"),
			fields.WithPath("minOnHand").Description("Min On Hand"),
		),
	)
	rq.NoError(err)

	read := func(name string) string {
		b, err := os.ReadFile(filepath.Join(dir, "v1", "beer-update", name+".md"))
		rq.NoError(err)

		return string(b)
	}

	curl := read("curl-request")
	rq.Contains(curl, "$ curl 'http://localhost:8080/api/v1/beer/1b4e28ba-2fa1-11d2-883f-0016d3cca427' -i -X PUT")
	rq.Contains(curl, "-H 'Content-Type: application/json'")
	rq.NotContains(curl, "X-Trace-Id")

	request := read("http-request")
	rq.Contains(request, "PUT /api/v1/beer/1b4e28ba-2fa1-11d2-883f-0016d3cca427 HTTP/1.1")
	rq.Contains(request, "Host: localhost:8080")
	rq.Contains(request, `"beerName": "Nice Ale"`)

	rq.Equal("```http\nHTTP/1.1 204 No Content\n```\n", read("http-response"))
	rq.Contains(read("path-parameters"), "| `beerId` | UUID of desired beer to update. |")

	requestFields := read("request-fields")
	rq.Contains(requestFields, "| `beerName` | String | Name of the beer | Must not be blank. Size must be at most 100 |")
	rq.Contains(requestFields, "| `upc` | Number | Beer UPC | Must not be null. Must be positive |")
	rq.NotContains(requestFields, "`id`")
}

func TestDocumentRejectsMismatch(t *testing.T) {
	testCases := []struct {
		name    string
		snippet apidoc.Snippet
	}{
		{
			name: "Undocumented field",
			snippet: apidoc.RequestFields(
				apidoc.FieldWithPath("id").Ignored(),
				apidoc.FieldWithPath("beerName"),
				apidoc.FieldWithPath("beerStyle"),
				apidoc.FieldWithPath("upc"),
				apidoc.FieldWithPath("price"),
			),
		},
		{
			name: "Missing field",
			snippet: apidoc.RequestFields(
				apidoc.FieldWithPath("id").Ignored(),
				apidoc.FieldWithPath("beerName"),
				apidoc.FieldWithPath("beerStyle"),
				apidoc.FieldWithPath("upc"),
				apidoc.FieldWithPath("price"),
				apidoc.FieldWithPath("minOnHand"),
				apidoc.FieldWithPath("quantityToBrew"),
			),
		},
		{
			name:    "Path does not match",
			snippet: apidoc.PathParameters("/api/v1/brewery/{breweryId}", apidoc.ParameterWithName("breweryId")),
		},
		{
			name:    "Parameter not documented",
			snippet: apidoc.PathParameters("/api/v1/beer/{beerId}"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			dir := t.TempDir()

			err := apidoc.New(dir).Document("v1/beer-update", newExchange(t), tc.snippet)
			rq.ErrorIs(err, apidoc.ErrUndocumented)

			_, statErr := os.Stat(filepath.Join(dir, "v1", "beer-update"))
			rq.True(os.IsNotExist(statErr))
		})
	}
}

func TestOptionalField(t *testing.T) {
	rq := require.New(t)

	err := apidoc.New(t.TempDir()).Document("v1/beer-update", newExchange(t),
		apidoc.RequestFields(
			apidoc.FieldWithPath("id").Ignored(),
			apidoc.FieldWithPath("beerName"),
			apidoc.FieldWithPath("beerStyle"),
			apidoc.FieldWithPath("upc"),
			apidoc.FieldWithPath("price"),
			apidoc.FieldWithPath("minOnHand"),
			apidoc.FieldWithPath("quantityToBrew").Optional(),
		),
	)
	rq.NoError(err)
}

func TestDirFromEnv(t *testing.T) {
	rq := require.New(t)

	t.Setenv(apidoc.EnvSnippetsDir, "")
	rq.Equal("fallback", apidoc.DirFromEnv("fallback"))

	t.Setenv(apidoc.EnvSnippetsDir, "target/generated-snippets")
	rq.Equal("target/generated-snippets", apidoc.DirFromEnv("fallback"))
}

func TestDocumentKeepsPayloadAsSent(t *testing.T) {
	rq := require.New(t)

	dir := t.TempDir()

	ex := newExchange(t)
	ex.StatusCode = http.StatusOK
	ex.ResponseBody = []byte(`{"upc":9007199254740993,"beerName":"Nice Ale","price":"9.99"}`)

	rq.NoError(apidoc.New(dir).Document("v1/beer-get", ex))

	b, err := os.ReadFile(filepath.Join(dir, "v1", "beer-get", "http-response.md"))
	rq.NoError(err)

	rq.Contains(string(b), "{\n  \"upc\": 9007199254740993,\n  \"beerName\": \"Nice Ale\",\n  \"price\": \"9.99\"\n}")
}
