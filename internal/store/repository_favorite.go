package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/poem-catalog/internal/logger"
)

// favoriteRepository is the PostgreSQL-backed implementation of
// [FavoriteRepository]. It manages the "user_favorites" join table, where
// the existence of a (user_id, poem_id) row is the fact being recorded.
type favoriteRepository struct {
	*DB
	logger *logger.Logger
}

// NewFavoriteRepository constructs a [FavoriteRepository] backed by the
// provided database connection and logger.
func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{
		DB:     db,
		logger: logger,
	}
}

// GetPoemIDs projects the user's join rows to a poem-id slice.
// A user with no favorites yields an empty slice.
func (f *favoriteRepository) GetPoemIDs(ctx context.Context, userID int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFavoriteIDsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := f.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "favoriteRepository.GetPoemIDs").Int64("user_id", userID).Msg("failed to execute favorites query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	poemIDs := make([]int64, 0, 20)
	for rows.Next() {
		var poemID int64
		if scanErr := rows.Scan(&poemID); scanErr != nil {
			log.Err(scanErr).Str("func", "favoriteRepository.GetPoemIDs").Int64("user_id", userID).Msg("failed to scan favorite row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		poemIDs = append(poemIDs, poemID)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "favoriteRepository.GetPoemIDs").Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return poemIDs, nil
}

// Add inserts one join row. The repository does not enforce idempotency;
// whether duplicate favorites are possible is decided by the schema.
func (f *favoriteRepository) Add(ctx context.Context, userID, poemID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertFavoriteQuery(userID, poemID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := f.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "favoriteRepository.Add").
			Int64("user_id", userID).
			Int64("poem_id", poemID).
			Str("pg_code", postgresError(err)).
			Msg("failed to insert favorite")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Remove deletes the join row matching (userID, poemID) exactly.
// Zero rows affected is success: removing a favorite that does not exist is
// not an error.
func (f *favoriteRepository) Remove(ctx context.Context, userID, poemID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteFavoriteQuery(userID, poemID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := f.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "favoriteRepository.Remove").
			Int64("user_id", userID).
			Int64("poem_id", poemID).
			Msg("failed to delete favorite")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Exists reports whether a (userID, poemID) join row is present.
// "No rows" is the normal negative result and returns (false, nil); only
// genuine store failures produce an error.
func (f *favoriteRepository) Exists(ctx context.Context, userID, poemID int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFavoriteQuery(userID, poemID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := f.DB.QueryRowContext(ctx, query, args...)

	var id int64
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		log.Err(err).
			Str("func", "favoriteRepository.Exists").
			Int64("user_id", userID).
			Int64("poem_id", poemID).
			Msg("failed to query favorite")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return true, nil
}
