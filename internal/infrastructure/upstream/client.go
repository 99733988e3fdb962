package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ligasala/registration-portal/internal/core/domain"
)

// Config carries the upstream base URL and the three call timeouts. Lookups
// are short, submissions get 20 seconds, report downloads several minutes.
type Config struct {
	BaseURL       string
	LookupTimeout time.Duration
	SubmitTimeout time.Duration
	ExportTimeout time.Duration
}

// Client talks to the external league API. Three separate HTTP clients are
// kept because http.Client.Timeout spans the whole exchange including body
// read, which is exactly the budget each call class needs.
type Client struct {
	baseURL string
	logger  zerolog.Logger
	lookup  *http.Client
	submit  *http.Client
	export  *http.Client
}

func New(cfg Config, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
		lookup:  &http.Client{Timeout: cfg.LookupTimeout},
		submit:  &http.Client{Timeout: cfg.SubmitTimeout},
		export:  &http.Client{Timeout: cfg.ExportTimeout},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path, credential string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if credential != "" {
		req.Header.Set("Authorization", credential)
	}
	return req, nil
}

// do executes the request and folds transport failures into the two sentinel
// outcomes the UI distinguishes: timed out versus could not connect.
func (c *Client) do(httpClient *http.Client, req *http.Request) (*http.Response, error) {
	resp, err := httpClient.Do(req)
	if err != nil {
		mapped := mapTransportError(err)
		c.logger.Warn().Err(err).Str("method", req.Method).Str("path", req.URL.Path).Msg("upstream call failed")
		return nil, mapped
	}
	return resp, nil
}

func mapTransportError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamTimeout, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamTimeout, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
}

// statusError builds the error for a non-success response, pulling the
// upstream's own message out of the body when it sent one.
func statusError(resp *http.Response) error {
	defer resp.Body.Close()
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&body)
	detail := body.Message
	if detail == "" {
		detail = body.Error
	}
	return &domain.UpstreamError{Status: resp.StatusCode, Detail: detail}
}

func success(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// getJSON issues a GET and decodes a JSON response into out.
func (c *Client) getJSON(ctx context.Context, httpClient *http.Client, path, credential string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, credential, nil)
	if err != nil {
		return err
	}
	resp, err := c.do(httpClient, req)
	if err != nil {
		return err
	}
	if !success(resp.StatusCode) {
		return statusError(resp)
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}

// sendJSON issues a request with a JSON body and decodes the response into
// out when out is non-nil.
func (c *Client) sendJSON(ctx context.Context, httpClient *http.Client, method, path, credential string, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}
	req, err := c.newRequest(ctx, method, path, credential, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.do(httpClient, req)
	if err != nil {
		return err
	}
	if !success(resp.StatusCode) {
		return statusError(resp)
	}
	defer resp.Body.Close()
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
