package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/models"
)

const defaultUsersCapacity = 64

// userRepository is the database/sql implementation of [UserRepository].
// It works against the "users" table of either supported dialect.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// row is satisfied by *sql.Row and *sql.Rows.
type row interface {
	Scan(dest ...any) error
}

func scanUser(r row) (models.User, error) {
	var u models.User
	err := r.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt)
	return u, err
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.List").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.List").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, defaultUsersCapacity)
	for rows.Next() {
		u, scanErr := scanUser(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.List").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (r *userRepository) Get(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetUserQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Get").Int64("user_id", id).Msg("failed to create query")
		return models.User{}, err
	}

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.User{}, r.mapError(ctx, "*userRepository.Get", id, err)
	}

	return u, nil
}

func (r *userRepository) Create(ctx context.Context, input models.UserInput) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder, input)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("failed to create query")
		return models.User{}, err
	}

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.User{}, r.mapError(ctx, "*userRepository.Create", 0, err)
	}

	log.Debug().Str("func", "*userRepository.Create").Int64("user_id", u.ID).Msg("user created")
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, id int64, input models.UserInput) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.db.builder, id, input)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Update").Int64("user_id", id).Msg("failed to create query")
		return models.User{}, err
	}

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.User{}, r.mapError(ctx, "*userRepository.Update", id, err)
	}

	return u, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Int64("user_id", id).Msg("failed to create query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Delete").Int64("user_id", id).Msg("failed to execute query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// mapError turns a single-row query error into a repository error.
func (r *userRepository) mapError(ctx context.Context, fn string, id int64, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}

	log := logger.FromContext(ctx)

	switch r.db.errorClassificator.Classify(err) {
	case ClassUniqueViolation:
		log.Warn().Str("func", fn).Int64("user_id", id).Msg("email already exists")
		return ErrEmailAlreadyExists
	default:
		log.Err(err).Str("func", fn).Int64("user_id", id).Msg("unexpected DB error")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
