package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/andyagdw/word-wizards/internal/model"
	"github.com/andyagdw/word-wizards/internal/pkg/serr"
	"github.com/andyagdw/word-wizards/internal/store"
)

// FavouritesService manages the shared favourite-word registry. Words are
// reference-counted across users; the store guarantees a record exists only
// while someone references it.
type FavouritesService struct {
	store store.DataStore
}

func NewFavouritesService(store store.DataStore) *FavouritesService {
	return &FavouritesService{store: store}
}

type FavouriteRequest struct {
	UserID string
	Word   string
}

// AddFavourite marks a word as the user's favourite. Adding the same word
// twice is a no-op.
func (s *FavouritesService) AddFavourite(ctx context.Context, r FavouriteRequest) error {
	if r.Word == "" {
		return serr.NewServiceError(errors.New("empty word"), http.StatusBadRequest, "word must not be empty")
	}

	err := s.store.AddFavourite(ctx, store.AddFavouriteRequest{
		UserID: r.UserID,
		Word:   r.Word,
	})
	if err != nil {
		return fmt.Errorf("add favourite: %w", err)
	}

	return nil
}

// RemoveFavourite unmarks a word for the user. If the user never favourited
// the word, it returns a ServiceError with status code 404.
func (s *FavouritesService) RemoveFavourite(ctx context.Context, r FavouriteRequest) error {
	err := s.store.RemoveFavourite(ctx, store.RemoveFavouriteRequest{
		UserID: r.UserID,
		Word:   r.Word,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			se := serr.NewServiceError(err, http.StatusNotFound, "favourite word not found")
			se.Env["word"] = r.Word
			se.Env["user_id"] = r.UserID
			return se
		}

		return fmt.Errorf("remove favourite: %w", err)
	}

	return nil
}

// ListFavourites returns the user's favourite words in alphabetical order.
func (s *FavouritesService) ListFavourites(ctx context.Context, userID string) ([]model.FavouriteWord, error) {
	favourites, err := s.store.ListFavourites(ctx, store.ListFavouritesRequest{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("list favourites: %w", err)
	}

	return favourites, nil
}

// IsFavourite reports whether the user has favourited the word.
func (s *FavouritesService) IsFavourite(ctx context.Context, r FavouriteRequest) (bool, error) {
	favourite, err := s.store.IsFavourite(ctx, store.IsFavouriteRequest{
		UserID: r.UserID,
		Word:   r.Word,
	})
	if err != nil {
		return false, fmt.Errorf("check favourite: %w", err)
	}

	return favourite, nil
}
