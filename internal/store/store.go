package store

import (
	"context"
	"errors"

	"github.com/andyagdw/word-wizards/internal/model"
)

var ErrNotFound = errors.New("not found")

// DataStore is the favourite word registry. A favourite word is shared
// across users and must disappear as soon as no user references it.
type DataStore interface {
	AddFavourite(ctx context.Context, r AddFavouriteRequest) error
	RemoveFavourite(ctx context.Context, r RemoveFavouriteRequest) error
	ListFavourites(ctx context.Context, r ListFavouritesRequest) ([]model.FavouriteWord, error)
	IsFavourite(ctx context.Context, r IsFavouriteRequest) (bool, error)
}
