package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/andyagdw/word-wizards/internal/metrics"
	"github.com/andyagdw/word-wizards/internal/model"
	"golang.org/x/time/rate"
)

var (
	// ErrMissingCredentials means no provider API key is configured. No fetch
	// can succeed in this state, so callers surface it instead of recovering.
	ErrMissingCredentials = errors.New("provider api key is not configured")

	// ErrUnavailable covers timeouts and non-success provider responses.
	// Callers treat it as "no data", never as a fatal condition.
	ErrUnavailable = errors.New("word provider unavailable")
)

type Config struct {
	BaseURL string
	APIKey  string
	Host    string
	Timeout time.Duration
	RPS     float64
	Burst   int
}

// Client is a stateless client for the WordsAPI-style provider. The provider
// enforces a request quota, so outbound calls go through a local rate limiter.
type Client struct {
	baseURL string
	apiKey  string
	host    string
	client  *http.Client
	limiter *rate.Limiter
}

func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		host:    cfg.Host,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
	}
}

type syllablesResponse struct {
	Count *int `json:"count"`
}

type senseResponse struct {
	Definition   string   `json:"definition"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Synonyms     []string `json:"synonyms"`
	Antonyms     []string `json:"antonyms"`
	Examples     []string `json:"examples"`
}

type wordResponse struct {
	Word      string             `json:"word"`
	Frequency *float64           `json:"frequency"`
	Syllables *syllablesResponse `json:"syllables"`
	Results   []senseResponse    `json:"results"`
}

type searchResponse struct {
	Results struct {
		Total int      `json:"total"`
		Data  []string `json:"data"`
	} `json:"results"`
}

// RandomWord fetches a random word from the provider.
func (c *Client) RandomWord(ctx context.Context) (model.WordData, error) {
	return c.fetchWord(ctx, "random", c.baseURL+"/?random=true")
}

// LookupWord fetches data for a specific word.
func (c *Client) LookupWord(ctx context.Context, word string) (model.WordData, error) {
	return c.fetchWord(ctx, "lookup", c.baseURL+"/"+url.PathEscape(word))
}

// Search runs a filtered query. The limit caps the provider's result count
// and is determined by the caller's tier.
func (c *Client) Search(ctx context.Context, filters model.SearchFilters, limit int) (model.SearchResult, error) {
	q := url.Values{}
	if filters.LetterPattern != "" {
		q.Set("letterPattern", filters.LetterPattern)
	}
	setIntParam(q, "lettersMin", filters.LettersMin)
	setIntParam(q, "lettersMax", filters.LettersMax)
	setIntParam(q, "syllablesMin", filters.SyllablesMin)
	setIntParam(q, "syllablesMax", filters.SyllablesMax)
	setFloatParam(q, "frequencyMin", filters.FrequencyMin)
	setFloatParam(q, "frequencyMax", filters.FrequencyMax)
	q.Set("limit", strconv.Itoa(limit))

	body, err := c.get(ctx, "search", c.baseURL+"/?"+q.Encode())
	if err != nil {
		return model.SearchResult{}, err
	}
	if len(body) == 0 {
		metrics.IncProviderRequest("search", "empty")
		return model.SearchResult{}, nil
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		metrics.IncProviderRequest("search", "error")
		return model.SearchResult{}, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	metrics.IncProviderRequest("search", "ok")
	return model.SearchResult{
		Total: resp.Results.Total,
		Words: resp.Results.Data,
	}, nil
}

func (c *Client) fetchWord(ctx context.Context, endpoint, u string) (model.WordData, error) {
	body, err := c.get(ctx, endpoint, u)
	if err != nil {
		return model.WordData{}, err
	}
	if len(body) == 0 {
		metrics.IncProviderRequest(endpoint, "empty")
		return model.WordData{}, nil
	}

	var resp wordResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		metrics.IncProviderRequest(endpoint, "error")
		return model.WordData{}, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	metrics.IncProviderRequest(endpoint, "ok")
	return toWordData(resp), nil
}

func (c *Client) get(ctx context.Context, endpoint, u string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrMissingCredentials
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", c.host)

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.IncProviderRequest(endpoint, "unavailable")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.IncProviderRequest(endpoint, "unavailable")
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.IncProviderRequest(endpoint, "unavailable")
		return nil, fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	return body, nil
}

func toWordData(resp wordResponse) model.WordData {
	data := model.WordData{
		Word:      resp.Word,
		Frequency: resp.Frequency,
	}

	if resp.Syllables != nil {
		data.SyllableCount = resp.Syllables.Count
	}

	if resp.Results != nil {
		data.Senses = make([]model.Sense, 0, len(resp.Results))
		for _, r := range resp.Results {
			data.Senses = append(data.Senses, model.Sense{
				Definition:   r.Definition,
				PartOfSpeech: r.PartOfSpeech,
				Synonyms:     r.Synonyms,
				Antonyms:     r.Antonyms,
				Examples:     r.Examples,
			})
		}
	}

	return data
}

func setIntParam(q url.Values, key string, val *int) {
	if val != nil {
		q.Set(key, strconv.Itoa(*val))
	}
}

func setFloatParam(q url.Values, key string, val *float64) {
	if val != nil {
		q.Set(key, strconv.FormatFloat(*val, 'f', -1, 64))
	}
}
