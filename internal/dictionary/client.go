package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Placeholder texts returned when the lookup fails or the API has no data
const (
	DefinitionUnavailable = "Definition not available"
	ExampleUnavailable    = "No example available"
)

// DefaultBaseURL points at the free dictionary API
const DefaultBaseURL = "https://api.dictionaryapi.dev"

// Client fetches definitions and examples from the dictionary API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new dictionary client. An empty baseURL selects the public
// API; a zero timeout defaults to 5 seconds.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// entry mirrors the relevant part of the API response
type entry struct {
	Meanings []struct {
		Definitions []struct {
			Definition string `json:"definition"`
			Example    string `json:"example"`
		} `json:"definitions"`
	} `json:"meanings"`
}

// Lookup returns the first definition and example for the word. Every
// failure mode (network error, non-200 status, malformed payload, empty
// meanings) degrades to the placeholder pair; it never returns an error.
func (c *Client) Lookup(ctx context.Context, word string) (string, string) {
	definition, example, err := c.fetch(ctx, word)
	if err != nil {
		log.Printf("dictionary lookup for %q failed: %v", word, err)
		return DefinitionUnavailable, ExampleUnavailable
	}
	return definition, example
}

func (c *Client) fetch(ctx context.Context, word string) (string, string, error) {
	reqURL := c.baseURL + "/api/v2/entries/en/" + url.PathEscape(strings.TrimSpace(word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to create request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var entries []entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return "", "", fmt.Errorf("failed to decode response: %v", err)
	}

	if len(entries) == 0 || len(entries[0].Meanings) == 0 || len(entries[0].Meanings[0].Definitions) == 0 {
		return "", "", fmt.Errorf("no definitions returned")
	}

	first := entries[0].Meanings[0].Definitions[0]
	definition := strings.TrimSpace(first.Definition)
	if definition == "" {
		definition = DefinitionUnavailable
	}
	example := strings.TrimSpace(first.Example)
	if example == "" {
		example = ExampleUnavailable
	}

	return definition, example, nil
}
