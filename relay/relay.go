// Package relay provides the unified request execution layer.
package relay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/hashicorp/go-cleanhttp"

	"github.com/YspCoder/pixabay/adapter"
	"github.com/YspCoder/pixabay/dto"
	"github.com/YspCoder/pixabay/search"
	"github.com/YspCoder/pixabay/utils"
)

const (
	defaultTimeout = 4 * time.Second
	keyParam       = "key"
)

// Relay executes search requests using a unified flow.
type Relay struct {
	// Client, when set, is used for every call instead of a fresh one.
	Client *http.Client
	logger utils.Logger
}

// Request is a single search call.
type Request struct {
	URL     string
	Form    search.WireForm
	APIKey  string
	Timeout time.Duration
}

// Response is the raw outcome of a call that reached the server.
type Response struct {
	StatusCode int
	// Headers are keyed by canonical name; the last value of a repeated
	// header wins.
	Headers map[string]string
	Body    []byte
}

// NewRelay creates a relay. A nil logger discards output.
func NewRelay(client *http.Client, logger utils.Logger) *Relay {
	if logger == nil {
		logger = utils.NopLogger()
	}
	return &Relay{Client: client, logger: logger}
}

// Search runs one search for the adaptor's media kind and decodes the page.
func Search[T dto.Hit](ctx context.Context, r *Relay, adp adapter.Adaptor[T], config *adapter.ProviderConfig, params *search.Params) (*dto.Page[T], error) {
	if config == nil {
		return nil, fmt.Errorf("provider config is required")
	}
	if params == nil {
		params = &search.Params{}
	}

	params, err := adp.ModifyParams(params)
	if err != nil {
		return nil, err
	}
	target, err := adp.GetRequestURL(config)
	if err != nil {
		return nil, err
	}

	resp, err := r.Fetch(ctx, &Request{
		URL:     target,
		Form:    params.WireForm(),
		APIKey:  config.APIKey,
		Timeout: config.Timeout,
	})
	if err != nil {
		return nil, err
	}
	if err := Classify(resp); err != nil {
		r.logger.Debug("Search request rejected", "kind", adp.Name(), "status", resp.StatusCode, "error", err)
		return nil, err
	}
	return adp.ConvertResponse(ctx, config, resp.Body, resp.Headers)
}

// Fetch performs one GET request. Only failures to reach the server or to
// read its answer are returned as errors; statuses are left to Classify.
func (r *Relay) Fetch(ctx context.Context, request *Request) (*Response, error) {
	if request == nil {
		return nil, fmt.Errorf("request is required")
	}
	if request.URL == "" {
		return nil, fmt.Errorf("request url is empty")
	}

	values, err := query.Values(request.Form)
	if err != nil {
		return nil, &dto.Error{Kind: dto.KindTransport, Message: "failed to encode search parameters", Err: err}
	}
	logged := request.URL + "?" + values.Encode()
	values.Set(keyParam, request.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, request.URL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, &dto.Error{Kind: dto.KindTransport, Message: "failed to create request", Err: redact(err, logged)}
	}
	req.Close = true
	req.Header.Set("Accept", "application/json")

	r.logger.Debug("Sending search request", "url", logged)
	resp, err := r.httpClient(request.Timeout).Do(req)
	if err != nil {
		return nil, &dto.Error{Kind: dto.KindTransport, Message: "request failed", Err: redact(err, logged)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &dto.Error{Kind: dto.KindTransport, Message: "failed to read response body", StatusCode: resp.StatusCode, Err: err}
	}
	r.logger.Debug("Search response received", "status", resp.StatusCode, "bytes", len(body))

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    NormalizeHeaders(resp.Header),
		Body:       body,
	}, nil
}

// Classify maps a response status to an error, or nil for 200 and 201.
func Classify(resp *Response) error {
	if resp == nil {
		return &dto.Error{Kind: dto.KindUnexpectedResponse, Message: "empty response"}
	}
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		return nil
	case http.StatusTooManyRequests:
		return &dto.Error{
			Kind:       dto.KindRateLimited,
			StatusCode: resp.StatusCode,
			Message:    "rate limit exceeded",
			Headers:    copyHeaders(resp.Headers),
		}
	}

	body := string(resp.Body)
	if strings.Contains(body, "API key") {
		return &dto.Error{
			Kind:       dto.KindInvalidCredentials,
			StatusCode: resp.StatusCode,
			Message:    "API key rejected",
			Body:       body,
		}
	}
	return &dto.Error{
		Kind:       dto.KindUnexpectedResponse,
		StatusCode: resp.StatusCode,
		Message:    "unexpected response",
		Body:       body,
		Headers:    copyHeaders(resp.Headers),
	}
}

// NormalizeHeaders flattens h into canonical name → last value.
func NormalizeHeaders(h http.Header) map[string]string {
	headers := make(map[string]string, len(h))
	for name, values := range h {
		if len(values) == 0 {
			continue
		}
		headers[textproto.CanonicalMIMEHeaderKey(name)] = values[len(values)-1]
	}
	return headers
}

func (r *Relay) httpClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if r.Client != nil {
		if r.Client.Timeout != 0 {
			return r.Client
		}
		// Copy so the caller's client is left untouched.
		client := *r.Client
		client.Timeout = timeout
		return &client
	}
	transport := cleanhttp.DefaultTransport()
	transport.DisableKeepAlives = true
	return &http.Client{Transport: transport, Timeout: timeout}
}

// redact replaces the request URL inside err so the key never leaks into
// error strings.
func redact(err error, logged string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &url.Error{Op: urlErr.Op, URL: logged, Err: urlErr.Err}
	}
	return err
}

func copyHeaders(headers map[string]string) map[string]string {
	if headers == nil {
		return nil
	}
	copied := make(map[string]string, len(headers))
	for name, value := range headers {
		copied[name] = value
	}
	return copied
}
