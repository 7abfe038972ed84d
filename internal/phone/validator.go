// Package phone validates phone numbers against an external web API and
// derives country and timezone data from the response.
package phone

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrInvalidPhone covers every validation failure: a negative verdict, a
// non-2xx response, a malformed body, and transport errors. Callers are not
// meant to distinguish them.
var ErrInvalidPhone = errors.New("phone number is not valid")

// Validation is the enrichment derived from a valid phone number.
type Validation struct {
	Country   string   `json:"country"`
	Timezones []string `json:"timezones"`
}

// Validator checks a phone number and returns its enrichment.
type Validator interface {
	Validate(ctx context.Context, number string) (Validation, error)
}

// Client calls the validatephone HTTP API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Validate performs one validation call. No retries: failures surface
// immediately as ErrInvalidPhone.
func (c *Client) Validate(ctx context.Context, number string) (Validation, error) {
	endpoint := c.baseURL + "?number=" + url.QueryEscape(number)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Validation{}, fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return Validation{}, fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Validation{}, fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}

	return parseValidation(resp.StatusCode, body)
}

// parseValidation decodes a validatephone response. The response is an
// untrusted external contract: a shape that lacks the fields we derive from
// it is rejected the same as a negative verdict.
func parseValidation(status int, body []byte) (Validation, error) {
	if status < 200 || status >= 300 {
		return Validation{}, fmt.Errorf("%w: status %d", ErrInvalidPhone, status)
	}

	var payload struct {
		IsValid   bool     `json:"is_valid"`
		Country   string   `json:"country"`
		Timezones []string `json:"timezones"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return Validation{}, fmt.Errorf("%w: malformed response: %v", ErrInvalidPhone, err)
	}
	if !payload.IsValid {
		return Validation{}, ErrInvalidPhone
	}
	if payload.Country == "" || len(payload.Timezones) == 0 {
		return Validation{}, fmt.Errorf("%w: response missing country or timezones", ErrInvalidPhone)
	}

	return Validation{Country: payload.Country, Timezones: payload.Timezones}, nil
}
