// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"giftlink_backend/internal/feature/auth/domain/entity"
	"giftlink_backend/internal/feature/auth/usecase"
)

// pgUniqueViolation is the PostgreSQL SQLSTATE for a unique constraint violation.
const pgUniqueViolation = "23505"

// userGorm is the GORM implementation of the UserRepository interface.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check that userGorm implements usecase.UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm creates a new userGorm backed by the given gorm.DB connection.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts the user. A violation of the email unique index is
// translated to usecase.ErrEmailAlreadyExists; this is the only duplicate
// check, so two concurrent registrations cannot both succeed.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return storeErr(err)
	}
	return nil
}

// FindByEmail retrieves a user by email address.
// It returns usecase.ErrUserNotFound when the user does not exist.
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, storeErr(err)
	}
	return &u, nil
}

// UpdateFirstName sets the first name of the user with the given email and
// returns the updated record. GORM touches UpdatedAt on the way through.
// It returns usecase.ErrUserNotFound when the user does not exist.
func (r *userGorm) UpdateFirstName(ctx context.Context, email, firstName string) (*entity.User, error) {
	res := r.db.WithContext(ctx).Model(&entity.User{}).
		Where("email = ?", email).
		Update("first_name", firstName)
	if res.Error != nil {
		return nil, storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrUserNotFound
	}
	return r.FindByEmail(ctx, email)
}

// isDuplicateKey reports whether err is a unique constraint violation.
// The Postgres driver surfaces SQLSTATE 23505; GORM's error translation
// covers the SQLite driver used by the test suite.
func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// storeErr marks a driver-level failure as a store outage so callers can
// match it with errors.Is without losing the underlying cause.
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", usecase.ErrStoreUnavailable, err)
}
