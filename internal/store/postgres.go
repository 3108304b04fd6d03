package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/andyagdw/word-wizards/internal/model"
	_ "github.com/lib/pq"
)

// PostgresStore implements the DataStore interface using PostgreSQL as the backend.
type PostgresStore struct {
	db *sql.DB
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DB       string
}

func NewPostgresDB(cfg PostgresConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DB))
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// AddFavourite gets or creates the favourite word record and links the user
// to it. Adding twice is a no-op. The upsert takes a row lock on the word,
// so a concurrent remove of the last reference cannot delete the record
// between get and link.
func (s *PostgresStore) AddFavourite(ctx context.Context, r AddFavouriteRequest) error {
	err := s.withinTx(ctx, func(tx *sql.Tx) error {
		var wordID int64
		err := tx.QueryRowContext(ctx, `
			INSERT INTO favourite_words (word) VALUES ($1)
			ON CONFLICT (word) DO UPDATE SET word = EXCLUDED.word
			RETURNING id`, r.Word).Scan(&wordID)
		if err != nil {
			return fmt.Errorf("get or create favourite word: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO favourite_word_users (word_id, user_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING`, wordID, r.UserID)
		if err != nil {
			return fmt.Errorf("link user to favourite word: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("add favourite: %w", err)
	}

	return nil
}

// RemoveFavourite unlinks the user from the word and deletes the word record
// when no user references it any longer. Removing a word the user never
// favourited returns ErrNotFound.
func (s *PostgresStore) RemoveFavourite(ctx context.Context, r RemoveFavouriteRequest) error {
	return s.withinTx(ctx, func(tx *sql.Tx) error {
		var wordID int64
		err := tx.QueryRowContext(ctx,
			"SELECT id FROM favourite_words WHERE word = $1 FOR UPDATE", r.Word).Scan(&wordID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}

			return fmt.Errorf("lock favourite word: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			"DELETE FROM favourite_word_users WHERE word_id = $1 AND user_id = $2", wordID, r.UserID)
		if err != nil {
			return fmt.Errorf("unlink user from favourite word: %w", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("check unlink result: %w", err)
		}
		if n == 0 {
			return ErrNotFound
		}

		_, err = tx.ExecContext(ctx, `
			DELETE FROM favourite_words w
			WHERE w.id = $1
			AND NOT EXISTS (SELECT 1 FROM favourite_word_users u WHERE u.word_id = w.id)`, wordID)
		if err != nil {
			return fmt.Errorf("delete unreferenced favourite word: %w", err)
		}

		return nil
	})
}

func (s *PostgresStore) ListFavourites(ctx context.Context, r ListFavouritesRequest) ([]model.FavouriteWord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT w.word, w.date_added
		FROM favourite_words w
		JOIN favourite_word_users u ON u.word_id = w.id
		WHERE u.user_id = $1
		ORDER BY w.word`, r.UserID)
	if err != nil {
		return nil, fmt.Errorf("query favourites: %w", err)
	}
	defer rows.Close()

	var favourites []model.FavouriteWord
	for rows.Next() {
		var f model.FavouriteWord
		if err := rows.Scan(&f.Word, &f.DateAdded); err != nil {
			return nil, fmt.Errorf("scan favourite: %w", err)
		}

		favourites = append(favourites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate favourites: %w", err)
	}

	return favourites, nil
}

func (s *PostgresStore) IsFavourite(ctx context.Context, r IsFavouriteRequest) (bool, error) {
	var favourite bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM favourite_words w
			JOIN favourite_word_users u ON u.word_id = w.id
			WHERE w.word = $1 AND u.user_id = $2
		)`, r.Word, r.UserID).Scan(&favourite)
	if err != nil {
		return false, fmt.Errorf("query favourite: %w", err)
	}

	return favourite, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) withinTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback tx: %w", rbErr))
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}
