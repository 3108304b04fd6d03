package provider

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/andyagdw/word-wizards/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Host:    "wordsapi.test",
		Timeout: 2 * time.Second,
		RPS:     100,
		Burst:   100,
	}
}

func TestLookupWord(t *testing.T) {
	var gotPath, gotKey, gotHost string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-rapidapi-key")
		gotHost = r.Header.Get("x-rapidapi-host")
		fmt.Fprint(w, `{
			"word": "go",
			"frequency": 6.98,
			"syllables": {"count": 1},
			"results": [
				{"definition": "d1", "partOfSpeech": "verb", "synonyms": ["travel"], "examples": ["go home"]},
				{"definition": "d2", "partOfSpeech": "noun"}
			]
		}`)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	data, err := c.LookupWord(t.Context(), "go")
	require.NoError(t, err)

	assert.Equal(t, "/go", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "wordsapi.test", gotHost)

	assert.Equal(t, "go", data.Word)
	require.NotNil(t, data.Frequency)
	assert.Equal(t, 6.98, *data.Frequency)
	require.NotNil(t, data.SyllableCount)
	assert.Equal(t, 1, *data.SyllableCount)
	require.Len(t, data.Senses, 2)
	assert.Equal(t, "d1", data.Senses[0].Definition)
	assert.Equal(t, "verb", data.Senses[0].PartOfSpeech)
	assert.Equal(t, []string{"travel"}, data.Senses[0].Synonyms)
	assert.Equal(t, []string{"go home"}, data.Senses[0].Examples)
}

func TestLookupWord_AbsentFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"word": "zzz"}`)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	data, err := c.LookupWord(t.Context(), "zzz")
	require.NoError(t, err)

	assert.Equal(t, "zzz", data.Word)
	assert.Nil(t, data.Frequency)
	assert.Nil(t, data.SyllableCount)
	assert.Nil(t, data.Senses)
}

func TestLookupWord_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	data, err := c.LookupWord(t.Context(), "any")
	require.NoError(t, err)

	assert.True(t, data.Empty())
}

func TestLookupWord_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	_, err := c.LookupWord(t.Context(), "missing")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestLookupWord_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Timeout = 10 * time.Millisecond

	c := NewClient(cfg)
	_, err := c.LookupWord(t.Context(), "slow")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestLookupWord_NoAPIKey(t *testing.T) {
	cfg := testConfig("http://localhost:1")
	cfg.APIKey = ""

	c := NewClient(cfg)
	_, err := c.LookupWord(t.Context(), "any")
	require.ErrorIs(t, err, ErrMissingCredentials)
}

func TestRandomWord(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{"word": "serendipity"}`)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	data, err := c.RandomWord(t.Context())
	require.NoError(t, err)

	assert.Equal(t, "random=true", gotQuery)
	assert.Equal(t, "serendipity", data.Word)
}

func TestSearch(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{"results": {"total": 3, "data": ["cat", "cap", "car"]}}`)
	}))
	defer srv.Close()

	min := 3
	max := 3
	filters := model.SearchFilters{
		LetterPattern: "^ca",
		LettersMin:    &min,
		LettersMax:    &max,
	}

	c := NewClient(testConfig(srv.URL))
	res, err := c.Search(t.Context(), filters, 50)
	require.NoError(t, err)

	assert.Equal(t, []string{"^ca"}, gotQuery["letterPattern"])
	assert.Equal(t, []string{"3"}, gotQuery["lettersMin"])
	assert.Equal(t, []string{"3"}, gotQuery["lettersMax"])
	assert.Equal(t, []string{"50"}, gotQuery["limit"])

	assert.Equal(t, 3, res.Total)
	assert.Equal(t, []string{"cat", "cap", "car"}, res.Words)
}

func TestSearch_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	_, err := c.Search(t.Context(), model.SearchFilters{LetterPattern: "^a"}, 25)
	require.ErrorIs(t, err, ErrUnavailable)
}
