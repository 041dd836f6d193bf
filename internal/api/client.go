package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// Client is the HTTP client for the B2FY backend REST API. Every call is a
// single shot: no retry, no timeout, no request de-duplication. Consistency is
// achieved by the pages re-fetching state after each write.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// Error is a backend failure normalized to the message of its JSON error body,
// falling back to the HTTP status text. Callers do not distinguish 4xx from
// 5xx; they render the message inline.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func (c *Client) Get(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, token, out)
}

func (c *Client) Post(ctx context.Context, path string, body any, token string, out any) error {
	return c.do(ctx, http.MethodPost, path, body, token, out)
}

func (c *Client) Put(ctx context.Context, path string, body any, token string, out any) error {
	return c.do(ctx, http.MethodPut, path, body, token, out)
}

func (c *Client) Patch(ctx context.Context, path string, body any, token string, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, token, out)
}

func (c *Client) Delete(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, token, out)
}

func (c *Client) do(ctx context.Context, method, path string, body any, token string, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return c.errorFrom(res)
	}
	if res.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func (c *Client) errorFrom(res *http.Response) error {
	apiErr := &Error{Status: res.StatusCode}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	} else if txt := http.StatusText(res.StatusCode); txt != "" {
		apiErr.Message = txt
	} else {
		apiErr.Message = "erro na requisição"
	}
	return apiErr
}
