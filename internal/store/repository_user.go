package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/query"
	"github.com/MKhiriev/go-users-api/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. It works with both PostgreSQL and SQLite; dialect details
// come from the [DB] it was built with.
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

// CreateUser inserts a new user and returns the stored row.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	q, args, err := buildInsertUserQuery(r.db.builder(), user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, err
	}

	var created models.User
	row := r.db.QueryRowContext(ctx, q, args...)
	if err = row.Scan(scanTargets(&created, userColumns)...); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// FindUsers executes spec against the active users and returns one page of
// projected documents. An empty page is not an error.
func (r *userRepository) FindUsers(ctx context.Context, spec query.Spec) ([]models.Document, error) {
	log := logger.FromContext(ctx)

	b := newUserSelectBuilder(r.db.builder())
	spec.ApplyTo(b)

	q, args, columns, err := b.ToSql()
	if err != nil {
		log.Debug().Err(err).Str("func", "*userRepository.FindUsers").Msg("invalid query spec")
		return nil, err
	}

	var documents []models.Document
	err = r.db.withRetry(ctx, func() error {
		var queryErr error
		documents, queryErr = r.queryDocuments(ctx, q, args, columns)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUsers").Msg("error finding users")
		return nil, err
	}

	return documents, nil
}

func (r *userRepository) queryDocuments(ctx context.Context, q string, args []any, columns []userColumn) ([]models.Document, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	documents := make([]models.Document, 0)
	for rows.Next() {
		var user models.User
		if err = rows.Scan(scanTargets(&user, columns)...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		documents = append(documents, toDocument(&user, columns))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return documents, nil
}

// CountUsers counts active users matching filter.
func (r *userRepository) CountUsers(ctx context.Context, filter query.Predicate) (int64, error) {
	log := logger.FromContext(ctx)

	b := newUserSelectBuilder(r.db.builder())
	b.ApplyFilter(filter)

	q, args, err := b.CountSql()
	if err != nil {
		log.Debug().Err(err).Str("func", "*userRepository.CountUsers").Msg("invalid filter")
		return 0, err
	}

	var total int64
	err = r.db.withRetry(ctx, func() error {
		if scanErr := r.db.QueryRowContext(ctx, q, args...).Scan(&total); scanErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CountUsers").Msg("error counting users")
		return 0, err
	}

	return total, nil
}

// FindUserByID returns the active user with the given ID or [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	q, args, err := buildFindUserByIDQuery(r.db.builder(), id)
	if err != nil {
		return models.User{}, err
	}

	var found models.User
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, q, args...).Scan(scanTargets(&found, userColumns)...)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Int64("id", id).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// UpdateUser applies the non-nil fields of update, increments the version and
// returns the updated row.
func (r *userRepository) UpdateUser(ctx context.Context, id int64, update models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	q, args, err := buildUpdateUserQuery(r.db.builder(), id, update)
	if err != nil {
		return models.User{}, err
	}

	var updated models.User
	err = r.db.QueryRowContext(ctx, q, args...).Scan(scanTargets(&updated, userColumns)...)
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case r.db.errorClassificator.IsUniqueViolation(err):
		return models.User{}, ErrEmailAlreadyExists
	default:
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("id", id).Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// DeactivateUser soft-deletes the user. Deactivating a missing or already
// inactive user returns [ErrUserNotFound].
func (r *userRepository) DeactivateUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	q, args, err := buildDeactivateUserQuery(r.db.builder(), id)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeactivateUser").Int64("id", id).Msg("error deactivating user")
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
