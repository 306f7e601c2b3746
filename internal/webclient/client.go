package webclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultTimeout = 15 * time.Second

// APIError is a non-2xx answer from the server. Message holds the body's
// "error" field and is empty when the body carried none.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

// TransportError means the request never produced an HTTP response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "transport: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// Client talks to the clinic REST API.
type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	return NewWithClient(baseURL, &http.Client{Timeout: DefaultTimeout})
}

func NewWithClient(baseURL string, hc *http.Client) *Client {
	r := resty.NewWithClient(hc).
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json")
	return &Client{http: r}
}

// SetDebug turns on resty request/response dumps.
func (c *Client) SetDebug(on bool) *Client {
	c.http.SetDebug(on)
	return c
}

func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// do sends one request and decodes a successful body into out when out is
// not nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return &TransportError{Err: err}
	}

	if !resp.IsSuccess() {
		return decodeError(resp.StatusCode(), resp.Body())
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeError(status int, raw []byte) *APIError {
	out := &APIError{Status: status}

	var body struct {
		Error string `json:"error"`
		Code  string `json:"error_code"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		out.Message = strings.TrimSpace(body.Error)
		out.Code = body.Code
	}
	return out
}
