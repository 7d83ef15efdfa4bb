package store

import (
	"encoding/json"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/poem-catalog/models"
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// ($n) placeholders. All repository queries are built through it so that
// predicates, ordering and RETURNING clauses are composed instead of
// hand-concatenated.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var poemColumns = []string{"id", "title", "author", "dynasty", "content", "tags", "created_at", "updated_at"}

// ─────────────────────────────────────────────
// poems
// ─────────────────────────────────────────────

// selectPoems is the base SELECT every poem listing starts from.
func selectPoems() sq.SelectBuilder {
	return psql.Select(poemColumns...).From("poems")
}

// buildSelectAllPoemsQuery lists the whole catalog ordered by dynasty then
// author (store-collation order).
func buildSelectAllPoemsQuery() (string, []any, error) {
	return selectPoems().OrderBy("dynasty", "author").ToSql()
}

// buildPoemsByTagQuery matches poems whose tag list contains the given tag
// via jsonb containment. Ordering matches buildSelectAllPoemsQuery.
func buildPoemsByTagQuery(tag string) (string, []any, error) {
	needle, err := json.Marshal([]string{tag})
	if err != nil {
		return "", nil, err
	}

	return selectPoems().
		Where(sq.Expr("tags @> ?::jsonb", string(needle))).
		OrderBy("dynasty", "author").
		ToSql()
}

// buildPoemsByDynastyQuery matches poems by exact dynasty, ordered by author.
func buildPoemsByDynastyQuery(dynasty string) (string, []any, error) {
	return selectPoems().
		Where(sq.Eq{"dynasty": dynasty}).
		OrderBy("author").
		ToSql()
}

// buildPoemsByAuthorQuery matches poems by exact author, ordered by title.
func buildPoemsByAuthorQuery(author string) (string, []any, error) {
	return selectPoems().
		Where(sq.Eq{"author": author}).
		OrderBy("title").
		ToSql()
}

// buildSearchPoemsQuery matches poems whose title, author or content
// contains the keyword, case-insensitively. An empty keyword degenerates to
// ILIKE '%%' and matches every row, which is the documented behaviour.
func buildSearchPoemsQuery(keyword string) (string, []any, error) {
	pattern := "%" + keyword + "%"

	return selectPoems().
		Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"author": pattern},
			sq.ILike{"content": pattern},
		}).
		OrderBy("dynasty", "author").
		ToSql()
}

// buildPoemColumnQuery fetches a single column across the whole poems table.
// Flattening and de-duplication happen in the service layer, mirroring the
// original client-side behaviour.
func buildPoemColumnQuery(column string) (string, []any, error) {
	return psql.Select(column).From("poems").ToSql()
}

// buildInsertPoemQuery inserts a poem and returns the stored row.
// Timestamps are writer-stamped and must already be set on the model.
func buildInsertPoemQuery(poem models.Poem) (string, []any, error) {
	return psql.Insert("poems").
		Columns("title", "author", "dynasty", "content", "tags", "created_at", "updated_at").
		Values(poem.Title, poem.Author, poem.Dynasty, poem.Content, poem.Tags, poem.CreatedAt, poem.UpdatedAt).
		Suffix("RETURNING id, title, author, dynasty, content, tags, created_at, updated_at").
		ToSql()
}

// buildUpdatePoemQuery replaces every mutable field of the poem identified
// by poem.ID and returns the stored row.
func buildUpdatePoemQuery(poem models.Poem) (string, []any, error) {
	return psql.Update("poems").
		Set("title", poem.Title).
		Set("author", poem.Author).
		Set("dynasty", poem.Dynasty).
		Set("content", poem.Content).
		Set("tags", poem.Tags).
		Set("updated_at", poem.UpdatedAt).
		Where(sq.Eq{"id": poem.ID}).
		Suffix("RETURNING id, title, author, dynasty, content, tags, created_at, updated_at").
		ToSql()
}

func buildDeletePoemQuery(id int64) (string, []any, error) {
	return psql.Delete("poems").Where(sq.Eq{"id": id}).ToSql()
}

// buildSelectPoemsByIDsQuery fetches poems whose id is in ids.
// squirrel renders the slice as an IN ($1,$2,…) clause.
func buildSelectPoemsByIDsQuery(ids []int64) (string, []any, error) {
	return selectPoems().Where(sq.Eq{"id": ids}).ToSql()
}

// ─────────────────────────────────────────────
// users / user_info
// ─────────────────────────────────────────────

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.Insert("users").
		Columns("username", "password", "created_at").
		Values(user.Username, user.Password, user.CreatedAt).
		Suffix("RETURNING id, username, password, created_at").
		ToSql()
}

func buildSelectUserByUsernameQuery(username string) (string, []any, error) {
	return psql.Select("id", "username", "password", "created_at").
		From("users").
		Where(sq.Eq{"username": username}).
		ToSql()
}

// buildSelectUserByCredentialsQuery is the login lookup: a compound equality
// filter on username and the stored password checksum. A wrong password and
// an unknown username both produce zero rows, by design.
func buildSelectUserByCredentialsQuery(username, passwordChecksum string) (string, []any, error) {
	return psql.Select("id", "username", "password", "created_at").
		From("users").
		Where(sq.Eq{"username": username, "password": passwordChecksum}).
		ToSql()
}

func buildSelectAllUsersQuery() (string, []any, error) {
	return psql.Select("id", "username", "password", "created_at").
		From("users").
		OrderBy("id").
		ToSql()
}

// buildUpdateUserPasswordQuery replaces a stored password checksum.
// Used only by the passwdfix maintenance command.
func buildUpdateUserPasswordQuery(username, passwordChecksum string) (string, []any, error) {
	return psql.Update("users").
		Set("password", passwordChecksum).
		Where(sq.Eq{"username": username}).
		ToSql()
}

var userInfoColumns = []string{"id", "user_id", "nickname", "gender", "email", "bio", "avatar_url", "created_at", "updated_at"}

func buildSelectUserInfoQuery(userID int64) (string, []any, error) {
	return psql.Select(userInfoColumns...).
		From("user_info").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildInsertUserInfoQuery(info models.UserInfo) (string, []any, error) {
	return psql.Insert("user_info").
		Columns("user_id", "nickname", "gender", "email", "bio", "avatar_url", "created_at", "updated_at").
		Values(info.UserID, info.Nickname, info.Gender, info.Email, info.Bio, info.AvatarURL, info.CreatedAt, info.UpdatedAt).
		Suffix("RETURNING " + joinColumns(userInfoColumns)).
		ToSql()
}

// buildUpdateUserInfoQuery merges only the supplied profile fields and
// stamps updated_at. Nil fields are left untouched.
func buildUpdateUserInfoQuery(userID int64, update models.UserInfoUpdate, updatedAt time.Time) (string, []any, error) {
	builder := psql.Update("user_info")

	if update.Nickname != nil {
		builder = builder.Set("nickname", *update.Nickname)
	}
	if update.Gender != nil {
		builder = builder.Set("gender", *update.Gender)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Bio != nil {
		builder = builder.Set("bio", *update.Bio)
	}
	if update.AvatarURL != nil {
		builder = builder.Set("avatar_url", *update.AvatarURL)
	}

	return builder.
		Set("updated_at", updatedAt).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + joinColumns(userInfoColumns)).
		ToSql()
}

// ─────────────────────────────────────────────
// user_favorites
// ─────────────────────────────────────────────

func buildSelectFavoriteIDsQuery(userID int64) (string, []any, error) {
	return psql.Select("poem_id").
		From("user_favorites").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildInsertFavoriteQuery(userID, poemID int64) (string, []any, error) {
	return psql.Insert("user_favorites").
		Columns("user_id", "poem_id").
		Values(userID, poemID).
		ToSql()
}

func buildDeleteFavoriteQuery(userID, poemID int64) (string, []any, error) {
	return psql.Delete("user_favorites").
		Where(sq.Eq{"user_id": userID, "poem_id": poemID}).
		ToSql()
}

// buildSelectFavoriteQuery is the single-row existence lookup; zero rows is
// the normal negative result, not an error.
func buildSelectFavoriteQuery(userID, poemID int64) (string, []any, error) {
	return psql.Select("id").
		From("user_favorites").
		Where(sq.Eq{"user_id": userID, "poem_id": poemID}).
		ToSql()
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
