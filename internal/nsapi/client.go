// Package nsapi talks to the NationStates public API.
package nsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"
)

const userAgentPrefix = "UPC's dupecheck, used by "

// excerptLen bounds how much of an error body ends up in a StatusError.
const excerptLen = 200

type Client struct {
	BaseURL         string
	UserAgentPrefix string
	HTTP            *http.Client
}

func NewClient(base string) *Client {
	return &Client{
		BaseURL:         base,
		UserAgentPrefix: userAgentPrefix,
		HTTP:            &http.Client{},
	}
}

// TransportError reports a failure to reach the API or read its response.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api status %d from %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("api status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

func (c *Client) DeckURL(nation string) string {
	return fmt.Sprintf("%s?q=cards+deck;nationname=%s", c.BaseURL, url.QueryEscape(nation))
}

// FetchDeck issues a single GET for the nation's deck and returns the raw
// response body.
func (c *Client) FetchDeck(ctx context.Context, identity, nation string) (string, error) {
	deckURL := c.DeckURL(nation)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, deckURL, nil)
	if err != nil {
		return "", &TransportError{Op: "build request", URL: deckURL, Err: err}
	}
	req.Header.Set("User-Agent", c.UserAgentPrefix+identity)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", &TransportError{Op: "GET", URL: deckURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Op: "read body", URL: deckURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{URL: deckURL, StatusCode: resp.StatusCode, Body: excerpt(string(body))}
	}

	return string(body), nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}

func excerpt(body string) string {
	body = strings.Join(strings.Fields(body), " ")
	if len(body) > excerptLen {
		cut := excerptLen
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		return body[:cut] + "..."
	}
	return body
}
