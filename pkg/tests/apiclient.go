package tests

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"beer_service/pkg/apidoc"
	"beer_service/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// APIClient ходит в тестовый сервер и возвращает записанный обмен, пригодный
// для apidoc.Documenter.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(
	baseURL string,
	httpClient *http.Client,
) APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return APIClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (a APIClient) Get(
	ctx context.Context,
	endpoint string,
	headers http.Header,
	dest any,
	errDest any,
) (apidoc.Exchange, error) {
	return a.httpRequest(ctx, http.MethodGet, endpoint, headers, nil, dest, errDest)
}

func (a APIClient) Post(
	ctx context.Context,
	endpoint string,
	headers http.Header,
	request any,
	dest any,
	errDest any,
) (apidoc.Exchange, error) {
	b, err := json.Marshal(request)
	if err != nil {
		return apidoc.Exchange{}, fmt.Errorf("json.Marshal: %w", err)
	}

	return a.httpRequest(ctx, http.MethodPost, endpoint, headers, b, dest, errDest)
}

func (a APIClient) PostJSON(
	ctx context.Context,
	endpoint string,
	headers http.Header,
	requestJSON string,
	dest any,
	errDest any,
) (apidoc.Exchange, error) {
	return a.httpRequest(ctx, http.MethodPost, endpoint, headers, []byte(requestJSON), dest, errDest)
}

func (a APIClient) Put(
	ctx context.Context,
	endpoint string,
	headers http.Header,
	request any,
	dest any,
	errDest any,
) (apidoc.Exchange, error) {
	b, err := json.Marshal(request)
	if err != nil {
		return apidoc.Exchange{}, fmt.Errorf("json.Marshal: %w", err)
	}

	return a.httpRequest(ctx, http.MethodPut, endpoint, headers, b, dest, errDest)
}

func (a APIClient) PutJSON(
	ctx context.Context,
	endpoint string,
	headers http.Header,
	requestJSON string,
	dest any,
	errDest any,
) (apidoc.Exchange, error) {
	return a.httpRequest(ctx, http.MethodPut, endpoint, headers, []byte(requestJSON), dest, errDest)
}

func (a APIClient) httpRequest(
	ctx context.Context,
	httpMethod string,
	endpoint string,
	headers http.Header,
	payload []byte,
	dest any,
	errDest any,
) (apidoc.Exchange, error) {
	var body io.Reader = http.NoBody
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, httpMethod, a.baseURL+endpoint, body)
	if err != nil {
		return apidoc.Exchange{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	if payload != nil && headers.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header[k] = v
	}

	exchange := apidoc.Exchange{
		Method:        httpMethod,
		URL:           req.URL,
		RequestHeader: req.Header.Clone(),
		RequestBody:   payload,
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return apidoc.Exchange{}, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apidoc.Exchange{}, fmt.Errorf("io.ReadAll: %w", err)
	}

	slog.Debug("test response",
		slog.String(logx.FieldHTTPMethod, httpMethod),
		slog.String(logx.FieldURL, req.URL.Path),
		slog.Int(logx.FieldResponseStatus, resp.StatusCode),
	)

	exchange.StatusCode = resp.StatusCode
	exchange.ResponseHeader = resp.Header.Clone()
	exchange.ResponseBody = respBody

	if err = parseResponse(resp.StatusCode, respBody, dest, errDest); err != nil {
		return exchange, fmt.Errorf("parseResponse: %w", err)
	}

	return exchange, nil
}

func parseResponse(status int, body []byte, dest, errDest any) error {
	if len(body) == 0 {
		return nil
	}

	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		if dest == nil {
			return nil
		}

		if err := json.Unmarshal(body, dest); err != nil {
			return fmt.Errorf("json.Unmarshal(success destination): %w", err)
		}

		return nil
	}

	if errDest != nil {
		if err := json.Unmarshal(body, errDest); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("json.Unmarshal(err destination): %w", err)
		}
	}

	return nil
}
