// Package languagetool implements grammar.Checker against a
// LanguageTool-compatible HTTP endpoint.
package languagetool

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client checks grammar via the LanguageTool /v2/check API.
type Client struct {
	endpoint string
	language string
	httpc    *http.Client
}

// New creates a client for a LanguageTool server, e.g.
// http://localhost:8010 with language "en-US".
func New(endpoint, language string, timeout time.Duration) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		language: language,
		httpc:    &http.Client{Timeout: timeout},
	}
}

type checkResponse struct {
	Matches []struct {
		Message string `json:"message"`
		Offset  int    `json:"offset"`
		Length  int    `json:"length"`
	} `json:"matches"`
}

// Check posts the transcript to /v2/check and returns the match count.
func (c *Client) Check(ctx context.Context, text string) (int, error) {
	form := url.Values{}
	form.Set("text", text)
	form.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("languagetool %s: %s", resp.Status, string(body))
	}

	var out checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("languagetool decode: %w", err)
	}
	return len(out.Matches), nil
}
