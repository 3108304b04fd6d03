package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/andyagdw/word-wizards/internal/fn"
	"github.com/andyagdw/word-wizards/internal/model"
	"github.com/andyagdw/word-wizards/internal/pkg/httpx"
	"github.com/andyagdw/word-wizards/internal/pkg/middleware"
	"github.com/andyagdw/word-wizards/internal/pkg/serr"
	"github.com/andyagdw/word-wizards/internal/service"
)

type wordsService interface {
	GetWordOfDay(ctx context.Context, tier model.Tier) (service.WordResult, error)
	GetWord(ctx context.Context, word string, tier model.Tier) (service.WordResult, error)
	SearchWords(ctx context.Context, r service.SearchWordsRequest) (service.SearchResult, error)
}

type favouritesService interface {
	AddFavourite(ctx context.Context, r service.FavouriteRequest) error
	RemoveFavourite(ctx context.Context, r service.FavouriteRequest) error
	ListFavourites(ctx context.Context, userID string) ([]model.FavouriteWord, error)
	IsFavourite(ctx context.Context, r service.FavouriteRequest) (bool, error)
}

type API struct {
	words      wordsService
	favourites favouritesService
	mux        http.ServeMux
}

func NewAPI(words wordsService, favourites favouritesService) *API {
	api := &API{
		words:      words,
		favourites: favourites,
		mux:        *http.NewServeMux(),
	}

	api.mount()
	return api
}

func (api *API) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	api.mux.ServeHTTP(w, r)
}

func (api *API) mount() {
	api.mux.HandleFunc("GET /words/today", api.handleWordOfDay)
	api.mux.HandleFunc("GET /words/{word}", api.handleGetWord)
	api.mux.HandleFunc("GET /search", api.handleSearch)
	api.mux.HandleFunc("PUT /favourites", api.handleAddFavourite)
	api.mux.HandleFunc("DELETE /favourites/{word}", api.handleRemoveFavourite)
	api.mux.HandleFunc("GET /favourites", api.handleListFavourites)
	api.mux.HandleFunc("GET /favourites/{word}", api.handleIsFavourite)
}

type senseResponse struct {
	Definition   string   `json:"definition"`
	PartOfSpeech string   `json:"part_of_speech"`
	Synonyms     []string `json:"synonyms,omitempty"`
	Antonyms     []string `json:"antonyms,omitempty"`
	Examples     []string `json:"examples,omitempty"`
}

type wordResponse struct {
	Word          string          `json:"word"`
	UsageLevel    string          `json:"usage_level"`
	SyllableCount int             `json:"syllable_count"`
	Senses        []senseResponse `json:"senses"`
	Degraded      bool            `json:"degraded"`
}

func toWordResponse(res service.WordResult) wordResponse {
	resp := wordResponse{
		Word:          res.Word.Word,
		UsageLevel:    string(res.Word.UsageLevel),
		SyllableCount: res.Word.SyllableCount,
		Degraded:      res.Degraded,
	}

	// nil and empty sense lists stay distinct in the response.
	if res.Word.Senses != nil {
		resp.Senses = make([]senseResponse, 0, len(res.Word.Senses))
		for _, s := range res.Word.Senses {
			resp.Senses = append(resp.Senses, senseResponse{
				Definition:   s.Definition,
				PartOfSpeech: s.PartOfSpeech,
				Synonyms:     s.Synonyms,
				Antonyms:     s.Antonyms,
				Examples:     s.Examples,
			})
		}
	}

	return resp
}

func (api *API) handleWordOfDay(w http.ResponseWriter, r *http.Request) {
	tier, err := tierFromRequest(r)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	res, err := api.words.GetWordOfDay(r.Context(), tier)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	err = httpx.WriteJSON(w, http.StatusOK, toWordResponse(res))
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}
}

func (api *API) handleGetWord(w http.ResponseWriter, r *http.Request) {
	tier, err := tierFromRequest(r)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	res, err := api.words.GetWord(r.Context(), r.PathValue("word"), tier)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	err = httpx.WriteJSON(w, http.StatusOK, toWordResponse(res))
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}
}

type searchResponse struct {
	Total    int        `json:"total"`
	Pages    [][]string `json:"pages"`
	Degraded bool       `json:"degraded"`
}

func (api *API) handleSearch(w http.ResponseWriter, r *http.Request) {
	tier, err := tierFromRequest(r)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	filters, err := filtersFromRequest(r)
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	res, err := api.words.SearchWords(r.Context(), service.SearchWordsRequest{
		Filters: filters,
		Tier:    tier,
	})
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	err = httpx.WriteJSON(w, http.StatusOK, searchResponse{
		Total:    res.Total,
		Pages:    res.Pages,
		Degraded: res.Degraded,
	})
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}
}

type addFavouriteRequest struct {
	Word string `json:"word"`
}

func (api *API) handleAddFavourite(w http.ResponseWriter, r *http.Request) {
	var req addFavouriteRequest
	err := httpx.ReadJSON(r, &req)
	if err != nil {
		httpx.HandleErr(w, r, serr.NewServiceError(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	err = api.favourites.AddFavourite(r.Context(), service.FavouriteRequest{
		UserID: middleware.UserIDFromContext(r.Context()),
		Word:   req.Word,
	})
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (api *API) handleRemoveFavourite(w http.ResponseWriter, r *http.Request) {
	err := api.favourites.RemoveFavourite(r.Context(), service.FavouriteRequest{
		UserID: middleware.UserIDFromContext(r.Context()),
		Word:   r.PathValue("word"),
	})
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type favouriteResponse struct {
	Word      string `json:"word"`
	DateAdded string `json:"date_added"`
}

type listFavouritesResponse struct {
	Favourites []favouriteResponse `json:"favourites"`
}

func (api *API) handleListFavourites(w http.ResponseWriter, r *http.Request) {
	favourites, err := api.favourites.ListFavourites(r.Context(), middleware.UserIDFromContext(r.Context()))
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	err = httpx.WriteJSON(w, http.StatusOK, listFavouritesResponse{
		Favourites: fn.Map(favourites, func(f model.FavouriteWord) favouriteResponse {
			return favouriteResponse{
				Word:      f.Word,
				DateAdded: f.DateAdded.Format(time.DateOnly),
			}
		}),
	})
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}
}

type isFavouriteResponse struct {
	Favourite bool `json:"favourite"`
}

func (api *API) handleIsFavourite(w http.ResponseWriter, r *http.Request) {
	favourite, err := api.favourites.IsFavourite(r.Context(), service.FavouriteRequest{
		UserID: middleware.UserIDFromContext(r.Context()),
		Word:   r.PathValue("word"),
	})
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}

	err = httpx.WriteJSON(w, http.StatusOK, isFavouriteResponse{Favourite: favourite})
	if err != nil {
		httpx.HandleErr(w, r, err)
		return
	}
}

func tierFromRequest(r *http.Request) (model.Tier, error) {
	tier, err := model.ParseTier(middleware.TierFromContext(r.Context()))
	if err != nil {
		return "", serr.NewServiceError(err, http.StatusForbidden, "unknown subscription tier")
	}

	return tier, nil
}

func filtersFromRequest(r *http.Request) (model.SearchFilters, error) {
	q := r.URL.Query()
	filters := model.SearchFilters{LetterPattern: q.Get("letter_pattern")}

	var err error
	if filters.LettersMin, err = intParam(q.Get("letters_min")); err != nil {
		return model.SearchFilters{}, serr.NewServiceError(err, http.StatusBadRequest, "invalid letters_min parameter")
	}
	if filters.LettersMax, err = intParam(q.Get("letters_max")); err != nil {
		return model.SearchFilters{}, serr.NewServiceError(err, http.StatusBadRequest, "invalid letters_max parameter")
	}
	if filters.SyllablesMin, err = intParam(q.Get("syllables_min")); err != nil {
		return model.SearchFilters{}, serr.NewServiceError(err, http.StatusBadRequest, "invalid syllables_min parameter")
	}
	if filters.SyllablesMax, err = intParam(q.Get("syllables_max")); err != nil {
		return model.SearchFilters{}, serr.NewServiceError(err, http.StatusBadRequest, "invalid syllables_max parameter")
	}
	if filters.FrequencyMin, err = floatParam(q.Get("frequency_min")); err != nil {
		return model.SearchFilters{}, serr.NewServiceError(err, http.StatusBadRequest, "invalid frequency_min parameter")
	}
	if filters.FrequencyMax, err = floatParam(q.Get("frequency_max")); err != nil {
		return model.SearchFilters{}, serr.NewServiceError(err, http.StatusBadRequest, "invalid frequency_max parameter")
	}

	return filters, nil
}

func intParam(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func floatParam(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}

	return &v, nil
}
