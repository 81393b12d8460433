package apidoc

import (
	"fmt"
	"net/http"
	"slices"
	"strings"
)

// Headers that change on every run or say nothing about the API.
var noisyHeaders = []string{ //nolint:gochecknoglobals
	"Accept-Encoding",
	"Date",
	"User-Agent",
	"X-Trace-Id",
}

type curlRequest struct{}

func (curlRequest) Name() string { return "curl-request" }

func (curlRequest) Render(doc Documenter, ex Exchange) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "```bash\n$ curl '%s' -i -X %s", doc.documentedURL(ex.URL), ex.Method)

	for _, name := range headerNames(ex.RequestHeader) {
		for _, value := range ex.RequestHeader.Values(name) {
			fmt.Fprintf(&b, " \\\n    -H '%s: %s'", name, value)
		}
	}

	if len(ex.RequestBody) > 0 {
		fmt.Fprintf(&b, " \\\n    -d '%s'", ex.RequestBody)
	}

	b.WriteString("\n```\n")

	return b.String(), nil
}

type httpRequest struct{}

func (httpRequest) Name() string { return "http-request" }

func (httpRequest) Render(doc Documenter, ex Exchange) (string, error) {
	var b strings.Builder

	u := doc.documentedURL(ex.URL)

	fmt.Fprintf(&b, "```http\n%s %s HTTP/1.1\n", ex.Method, u.RequestURI())
	writeHeaders(&b, ex.RequestHeader)
	fmt.Fprintf(&b, "Host: %s\n", u.Host)
	writeBody(&b, ex.RequestBody)
	b.WriteString("```\n")

	return b.String(), nil
}

type httpResponse struct{}

func (httpResponse) Name() string { return "http-response" }

func (httpResponse) Render(_ Documenter, ex Exchange) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "```http\nHTTP/1.1 %d %s\n", ex.StatusCode, http.StatusText(ex.StatusCode))
	writeHeaders(&b, ex.ResponseHeader)
	writeBody(&b, ex.ResponseBody)
	b.WriteString("```\n")

	return b.String(), nil
}

func headerNames(h http.Header) []string {
	names := make([]string, 0, len(h))

	for name := range h {
		if !slices.Contains(noisyHeaders, http.CanonicalHeaderKey(name)) {
			names = append(names, http.CanonicalHeaderKey(name))
		}
	}

	slices.Sort(names)

	return names
}

func writeHeaders(b *strings.Builder, h http.Header) {
	for _, name := range headerNames(h) {
		for _, value := range h.Values(name) {
			fmt.Fprintf(b, "%s: %s\n", name, value)
		}
	}
}

func writeBody(b *strings.Builder, body []byte) {
	if pretty := prettyJSON(body); pretty != "" {
		fmt.Fprintf(b, "\n%s\n", pretty)
	}
}
