package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/poem-catalog/internal/logger"
	"github.com/MKhiriev/poem-catalog/models"
)

// poemRepository is the PostgreSQL-backed implementation of [PoemRepository].
// It executes all catalog CRUD operations against the "poems" table using
// the embedded [*DB] connection.
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// that database interactions are traced with structured fields. Read methods
// return plain errors here; the degrade-to-empty policy for reads lives one
// layer up, in the poem service.
type poemRepository struct {
	*DB
	logger *logger.Logger
}

// NewPoemRepository constructs a [PoemRepository] backed by the provided
// database connection and logger.
func NewPoemRepository(db *DB, logger *logger.Logger) PoemRepository {
	logger.Debug().Msg("creating poem repository")
	return &poemRepository{
		DB:     db,
		logger: logger,
	}
}

// GetAll retrieves the whole catalog ordered by dynasty then author.
func (p *poemRepository) GetAll(ctx context.Context) ([]models.Poem, error) {
	query, args, err := buildSelectAllPoemsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.queryPoems(ctx, "poemRepository.GetAll", query, args...)
}

// GetByTag retrieves poems whose tag list contains tag (set membership,
// case-sensitive exact match), ordered like [poemRepository.GetAll].
// A tag carried by no poem yields an empty slice, not an error.
func (p *poemRepository) GetByTag(ctx context.Context, tag string) ([]models.Poem, error) {
	query, args, err := buildPoemsByTagQuery(tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.queryPoems(ctx, "poemRepository.GetByTag", query, args...)
}

// GetByDynasty retrieves poems with the exact dynasty label, ordered by author.
func (p *poemRepository) GetByDynasty(ctx context.Context, dynasty string) ([]models.Poem, error) {
	query, args, err := buildPoemsByDynastyQuery(dynasty)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.queryPoems(ctx, "poemRepository.GetByDynasty", query, args...)
}

// GetByAuthor retrieves poems with the exact author name, ordered by title.
func (p *poemRepository) GetByAuthor(ctx context.Context, author string) ([]models.Poem, error) {
	query, args, err := buildPoemsByAuthorQuery(author)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.queryPoems(ctx, "poemRepository.GetByAuthor", query, args...)
}

// Search retrieves poems whose title, author or content contains keyword,
// case-insensitively, ordered like [poemRepository.GetAll]. An empty keyword
// matches everything.
func (p *poemRepository) Search(ctx context.Context, keyword string) ([]models.Poem, error) {
	query, args, err := buildSearchPoemsQuery(keyword)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.queryPoems(ctx, "poemRepository.Search", query, args...)
}

// GetByIDs retrieves the poems whose id is in ids, in store order.
// An empty id set yields an empty slice without touching the database.
func (p *poemRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.Poem, error) {
	if len(ids) == 0 {
		return []models.Poem{}, nil
	}

	query, args, err := buildSelectPoemsByIDsQuery(ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return p.queryPoems(ctx, "poemRepository.GetByIDs", query, args...)
}

// GetAllTags fetches the tags column for every poem. Each row carries the
// full (possibly empty) tag list of one poem; flattening and de-duplication
// are the caller's concern.
func (p *poemRepository) GetAllTags(ctx context.Context) ([]models.TagList, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPoemColumnQuery("tags")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "poemRepository.GetAllTags").Msg("failed to execute tags column query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	lists := make([]models.TagList, 0, 50)
	for rows.Next() {
		var tags models.TagList
		if scanErr := rows.Scan(&tags); scanErr != nil {
			log.Err(scanErr).Str("func", "poemRepository.GetAllTags").Msg("failed to scan tags row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		lists = append(lists, tags)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "poemRepository.GetAllTags").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return lists, nil
}

// GetAllDynasties fetches the dynasty column for every poem, duplicates
// included.
func (p *poemRepository) GetAllDynasties(ctx context.Context) ([]string, error) {
	return p.queryColumn(ctx, "poemRepository.GetAllDynasties", "dynasty")
}

// GetAllAuthors fetches the author column for every poem, duplicates
// included.
func (p *poemRepository) GetAllAuthors(ctx context.Context) ([]string, error) {
	return p.queryColumn(ctx, "poemRepository.GetAllAuthors", "author")
}

// Create persists a new poem and returns the stored row with its
// store-assigned ID.
func (p *poemRepository) Create(ctx context.Context, poem models.Poem) (models.Poem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPoemQuery(poem)
	if err != nil {
		return models.Poem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := p.DB.QueryRowContext(ctx, query, args...)

	var created models.Poem
	if err := scanPoem(row, &created); err != nil {
		log.Err(err).Str("func", "poemRepository.Create").Str("title", poem.Title).Msg("failed to insert poem")
		return models.Poem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// Update replaces every mutable field of the poem identified by poem.ID and
// returns the stored row. Returns [ErrPoemNotFound] if no row matches.
func (p *poemRepository) Update(ctx context.Context, poem models.Poem) (models.Poem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePoemQuery(poem)
	if err != nil {
		return models.Poem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := p.DB.QueryRowContext(ctx, query, args...)

	var updated models.Poem
	if err := scanPoem(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Poem{}, ErrPoemNotFound
		}
		log.Err(err).Str("func", "poemRepository.Update").Int64("id", poem.ID).Msg("failed to update poem")
		return models.Poem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// Delete removes the poem with the given id.
// Returns [ErrPoemNotFound] if no row was deleted.
func (p *poemRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePoemQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "poemRepository.Delete").Int64("id", id).Msg("failed to delete poem")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPoemNotFound
	}

	return nil
}

// queryPoems executes a multi-row poem query and scans the result set.
func (p *poemRepository) queryPoems(ctx context.Context, caller, query string, args ...any) ([]models.Poem, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Str("pg_code", postgresError(err)).
			Bool("retryable", p.errorClassificator.Classify(err) == Retryable).
			Msg("failed to execute poems query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	poems := make([]models.Poem, 0, 50)
	for rows.Next() {
		var poem models.Poem
		if scanErr := scanPoem(rows, &poem); scanErr != nil {
			log.Err(scanErr).Str("func", caller).Msg("failed to scan poem row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		poems = append(poems, poem)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", caller).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return poems, nil
}

// queryColumn executes a single-text-column query across the poems table.
func (p *poemRepository) queryColumn(ctx context.Context, caller, column string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildPoemColumnQuery(column)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", caller).Str("column", column).Msg("failed to execute column query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make([]string, 0, 50)
	for rows.Next() {
		var value string
		if scanErr := rows.Scan(&value); scanErr != nil {
			log.Err(scanErr).Str("func", caller).Str("column", column).Msg("failed to scan column row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		values = append(values, value)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", caller).Str("column", column).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return values, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPoem(row rowScanner, poem *models.Poem) error {
	return row.Scan(
		&poem.ID,
		&poem.Title,
		&poem.Author,
		&poem.Dynasty,
		&poem.Content,
		&poem.Tags,
		&poem.CreatedAt,
		&poem.UpdatedAt,
	)
}
