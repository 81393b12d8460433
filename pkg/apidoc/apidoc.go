// Package apidoc turns HTTP exchanges captured in tests into Markdown API
// documentation snippets, failing when a payload and its field descriptors
// disagree.
//
// A test records an Exchange (see tests.APIClient), then calls
//
//	doc.Document("v1/beer-get", exchange,
//		apidoc.PathParameters("/api/v1/beer/{beerId}",
//			apidoc.ParameterWithName("beerId").Description("UUID of desired beer to get."),
//		),
//		apidoc.ResponseFields(fields...),
//	)
//
// which writes curl-request.md, http-request.md, http-response.md plus one
// file per extra snippet into <dir>/v1/beer-get/.
package apidoc

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	EnvSnippetsDir = "APIDOC_SNIPPETS_DIR"
	defaultBaseURL = "http://localhost:8080"
	dirMode        = 0o755
	fileMode       = 0o644
)

var ErrUndocumented = errors.New("payload and descriptors disagree")

// Exchange is one recorded request/response pair.
type Exchange struct {
	Method         string
	URL            *url.URL
	RequestHeader  http.Header
	RequestBody    []byte
	StatusCode     int
	ResponseHeader http.Header
	ResponseBody   []byte
}

// Snippet renders one documentation file for an exchange.
type Snippet interface {
	Name() string
	Render(doc Documenter, ex Exchange) (string, error)
}

type Documenter struct {
	dir     string
	baseURL *url.URL
}

type Option func(*Documenter)

// WithBaseURL replaces scheme and host of documented URLs, so snippets do not
// leak the random port of a test server.
func WithBaseURL(raw string) Option {
	return func(d *Documenter) {
		if u, err := url.Parse(raw); err == nil {
			d.baseURL = u
		}
	}
}

func New(dir string, opts ...Option) Documenter {
	d := Documenter{
		dir: dir,
	}

	WithBaseURL(defaultBaseURL)(&d)

	for _, opt := range opts {
		opt(&d)
	}

	return d
}

// DirFromEnv returns APIDOC_SNIPPETS_DIR or fallback.
func DirFromEnv(fallback string) string {
	if dir := os.Getenv(EnvSnippetsDir); dir != "" {
		return dir
	}

	return fallback
}

// Document renders the default snippets plus the given ones and writes them
// under <dir>/<id>/. Nothing is written when any snippet fails.
func (d Documenter) Document(id string, ex Exchange, snippets ...Snippet) error {
	all := append([]Snippet{curlRequest{}, httpRequest{}, httpResponse{}}, snippets...)
	rendered := make(map[string]string, len(all))

	for _, s := range all {
		content, err := s.Render(d, ex)
		if err != nil {
			return fmt.Errorf("%s: %s: %w", id, s.Name(), err)
		}

		rendered[s.Name()] = content
	}

	target := filepath.Join(d.dir, filepath.FromSlash(id))

	if err := os.MkdirAll(target, dirMode); err != nil {
		return fmt.Errorf("os.MkdirAll: %w", err)
	}

	for name, content := range rendered {
		if err := os.WriteFile(filepath.Join(target, name+".md"), []byte(content), fileMode); err != nil {
			return fmt.Errorf("os.WriteFile: %w", err)
		}
	}

	return nil
}

func (d Documenter) documentedURL(u *url.URL) *url.URL {
	out := *u
	out.Scheme = d.baseURL.Scheme
	out.Host = d.baseURL.Host

	return &out
}

// prettyJSON indents body as is: key order and number literals of the
// payload survive.
func prettyJSON(body []byte) string {
	if len(bytes.TrimSpace(body)) == 0 {
		return ""
	}

	var out bytes.Buffer

	if err := stdjson.Indent(&out, body, "", "  "); err != nil {
		return string(body)
	}

	return out.String()
}
