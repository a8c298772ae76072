// Package remote contains the per-entity gateways the client core uses
// to reach the API. Every call site receives a contract.ApiResponse,
// whether the failure was a business outcome or a transport one, so
// callers branch on Status alone.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"newshub/internal/contract"
)

const defaultTimeout = 10 * time.Second

// Client issues requests against a base URL and normalises every
// outcome into the ApiResponse envelope.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient builds a client for baseURL. A nil httpClient gets a
// default with a request timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// call performs one HTTP exchange. Transport failures, marshal
// failures and undecodable responses all come back as a 500 envelope;
// there is no separate error channel at this layer.
func (c *Client) call(ctx context.Context, method, path string, body any) contract.ApiResponse {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return contract.ServerError()
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return contract.ServerError()
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return contract.ServerError()
	}
	defer resp.Body.Close()

	var res contract.ApiResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return contract.ServerError()
	}
	if res.Status == 0 {
		return contract.ServerError()
	}

	return res
}

// Result decodes the envelope's result into T. It fails when the
// envelope is not a success or carries no result, which is exactly the
// contract: a non-200 status means the result must be ignored.
func Result[T any](res contract.ApiResponse) (T, error) {
	var out T

	if res.Status != contract.StatusSuccess {
		return out, fmt.Errorf("no result on status %d", res.Status)
	}
	if len(res.Result) == 0 {
		return out, fmt.Errorf("success envelope without result")
	}
	if err := json.Unmarshal(res.Result, &out); err != nil {
		return out, fmt.Errorf("decode result: %w", err)
	}

	return out, nil
}
