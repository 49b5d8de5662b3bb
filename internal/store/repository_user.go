package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/inkspire/internal/logger"
	"github.com/MKhiriev/inkspire/models"
	sq "github.com/Masterminds/squirrel"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns the stored row with its id and
// timestamps. Unique violations map to [ErrEmailAlreadyExists],
// [ErrPhoneAlreadyExists] or [ErrProviderAlreadyLinked].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		return models.User{}, buildQueryError(err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, repositoryError(err, nil)
	}

	return created, nil
}

// UpdateUser overwrites every mutable column of the user with user.ID.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(user)
	if err != nil {
		return models.User{}, buildQueryError(err)
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", user.ID).Msg("error updating user")
		return models.User{}, repositoryError(err, ErrNoUserWasFound)
	}

	return updated, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"id": userID})
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"email": email})
}

func (r *userRepository) FindUserByPhoneNumber(ctx context.Context, phoneNumber string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"phone_number": phoneNumber})
}

func (r *userRepository) FindUserByProvider(ctx context.Context, provider, providerID string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"provider": provider, "provider_id": providerID})
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, sq.Eq{"email": email})
}

func (r *userRepository) ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error) {
	return r.exists(ctx, sq.Eq{"phone_number": phoneNumber})
}

// DeleteUserByID removes the user; owned rows go with it through
// ON DELETE CASCADE.
func (r *userRepository) DeleteUserByID(ctx context.Context, userID int64) error {
	query, args, err := buildDeleteByIDQuery("users", userID)
	if err != nil {
		return buildQueryError(err)
	}

	return execAffectingOne(ctx, r.db.DB, ErrNoUserWasFound, query, args...)
}

func (r *userRepository) findUser(ctx context.Context, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(where)
	if err != nil {
		return models.User{}, buildQueryError(err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*userRepository.findUser").Msg("error finding user")
		}
		return models.User{}, repositoryError(err, ErrNoUserWasFound)
	}

	return user, nil
}

func (r *userRepository) exists(ctx context.Context, where sq.Eq) (bool, error) {
	query, args, err := buildUserExistsQuery(where)
	if err != nil {
		return false, buildQueryError(err)
	}

	var exists bool
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.exists").Msg("error checking user existence")
		return false, repositoryError(err, nil)
	}

	return exists, nil
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user                              models.User
		phoneNumber, provider, providerID sql.NullString
	)

	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &phoneNumber,
		&provider, &providerID, &user.Enabled, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return models.User{}, err
	}

	user.PhoneNumber = phoneNumber.String
	user.Provider = provider.String
	user.ProviderID = providerID.String
	return user, nil
}
