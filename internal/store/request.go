package store

type AddFavouriteRequest struct {
	UserID string
	Word   string
}

type RemoveFavouriteRequest struct {
	UserID string
	Word   string
}

type ListFavouritesRequest struct {
	UserID string
}

type IsFavouriteRequest struct {
	UserID string
	Word   string
}
