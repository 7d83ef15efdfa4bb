package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/poem-catalog/internal/logger"
	"github.com/MKhiriev/poem-catalog/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account records in the "users" table and profile records in the
// "user_info" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record and returns the fully populated
// [models.User] with its store-assigned ID.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//     The defensive pre-check in the service cannot prevent a race between
//     two concurrent registrations; the schema constraint is the arbiter and
//     its rejection maps to the same failure path.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var created models.User
	if err := row.Scan(&created.ID, &created.Username, &created.Password, &created.CreatedAt); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		default:
			log.Err(err).Str("func", "userRepository.CreateUser").Str("username", user.Username).Msg("failed to insert user")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindByUsername retrieves the account with the given username.
// Zero rows → [ErrUserNotFound].
func (r *userRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	query, args, err := buildSelectUserByUsernameQuery(username)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findUser(ctx, "userRepository.FindByUsername", query, args...)
}

// FindByCredentials retrieves the account matching both username and stored
// password checksum — the login lookup. Zero rows → [ErrUserNotFound]; the
// caller cannot (and must not) distinguish a wrong password from an unknown
// username.
func (r *userRepository) FindByCredentials(ctx context.Context, username, passwordChecksum string) (models.User, error) {
	query, args, err := buildSelectUserByCredentialsQuery(username, passwordChecksum)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findUser(ctx, "userRepository.FindByCredentials", query, args...)
}

// GetAllUsers lists every account record. Maintenance/debug use only.
func (r *userRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllUsersQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "userRepository.GetAllUsers").Msg("failed to execute users query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 20)
	for rows.Next() {
		var user models.User
		if scanErr := rows.Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "userRepository.GetAllUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "userRepository.GetAllUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

// UpdatePassword replaces the stored password checksum for the given
// username. Used by the passwdfix maintenance command.
// Zero rows affected → [ErrUserNotFound].
func (r *userRepository) UpdatePassword(ctx context.Context, username, passwordChecksum string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserPasswordQuery(username, passwordChecksum)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "userRepository.UpdatePassword").Str("username", username).Msg("failed to update password")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// GetUserInfo retrieves the profile row owned by userID.
// Zero rows → [ErrUserInfoNotFound]; an account without a profile is a valid
// state and callers create the default profile lazily.
func (r *userRepository) GetUserInfo(ctx context.Context, userID int64) (models.UserInfo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserInfoQuery(userID)
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var info models.UserInfo
	if err := scanUserInfo(row, &info); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserInfo{}, ErrUserInfoNotFound
		}
		log.Err(err).Str("func", "userRepository.GetUserInfo").Int64("user_id", userID).Msg("failed to query user info")
		return models.UserInfo{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return info, nil
}

// CreateUserInfo persists a new profile row and returns the stored row.
func (r *userRepository) CreateUserInfo(ctx context.Context, info models.UserInfo) (models.UserInfo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserInfoQuery(info)
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var created models.UserInfo
	if err := scanUserInfo(row, &created); err != nil {
		log.Err(err).Str("func", "userRepository.CreateUserInfo").Int64("user_id", info.UserID).Msg("failed to insert user info")
		return models.UserInfo{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// UpdateUserInfo merges the supplied profile fields into the row owned by
// userID, stamps updated_at, and returns the stored row.
// Zero rows → [ErrUserInfoNotFound].
func (r *userRepository) UpdateUserInfo(ctx context.Context, userID int64, update models.UserInfoUpdate, updatedAt time.Time) (models.UserInfo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserInfoQuery(userID, update, updatedAt)
	if err != nil {
		return models.UserInfo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var updated models.UserInfo
	if err := scanUserInfo(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserInfo{}, ErrUserInfoNotFound
		}
		log.Err(err).Str("func", "userRepository.UpdateUserInfo").Int64("user_id", userID).Msg("failed to update user info")
		return models.UserInfo{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *userRepository) findUser(ctx context.Context, caller, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, args...)

	var found models.User
	if err := row.Scan(&found.ID, &found.Username, &found.Password, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", caller).Str("pg_code", postgresError(err)).Msg("failed to query user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func scanUserInfo(row rowScanner, info *models.UserInfo) error {
	return row.Scan(
		&info.ID,
		&info.UserID,
		&info.Nickname,
		&info.Gender,
		&info.Email,
		&info.Bio,
		&info.AvatarURL,
		&info.CreatedAt,
		&info.UpdatedAt,
	)
}
