package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"giftlink_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer (usecase)
// rather than the provider (adapters).
type UserRepository interface {
	// Create persists a new user and assigns its ID and CreatedAt.
	// It returns ErrEmailAlreadyExists when the email is already taken,
	// relying on the store's uniqueness constraint rather than a
	// read-then-insert check.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user matching the given email address.
	// It returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateFirstName sets the first name of the user with the given email,
	// touches UpdatedAt, and returns the updated record.
	// It returns ErrUserNotFound when no such user exists.
	UpdateFirstName(ctx context.Context, email, firstName string) (*entity.User, error)
}

// PasswordHasher abstracts the one-way password hashing scheme.
type PasswordHasher interface {
	// Hash produces a salted hash of the plaintext password. Hashing the
	// same password twice yields different outputs.
	Hash(password string) (string, error)

	// Verify reports whether hashed was produced from password.
	Verify(hashed, password string) bool
}

// TokenIssuer mints signed session tokens for authenticated users.
type TokenIssuer interface {
	// Sign returns a token whose claims embed the given user ID.
	Sign(userID uint) (string, error)
}

// RegisterResult is returned on successful registration.
type RegisterResult struct {
	Token string
	Email string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token     string
	UserName  string
	UserEmail string
}

// UpdateResult is returned on successful profile update.
type UpdateResult struct {
	Token string
}

// authUsecase implements the credential and session-token business logic.
type authUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewAuthUsecase creates a new authUsecase with its collaborators injected.
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, tokens TokenIssuer) *authUsecase {
	return &authUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a new account and returns a session token for it.
// Duplicate emails surface as ErrEmailAlreadyExists from the repository's
// uniqueness constraint, which closes the race two concurrent registrations
// would otherwise have between a lookup and an insert.
func (u *authUsecase) Register(ctx context.Context, email, password, firstName, lastName string) (*RegisterResult, error) {
	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hashed,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := u.tokens.Sign(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	slog.Info("user registered", "email", email, "user_id", user.ID)
	return &RegisterResult{Token: token, Email: user.Email}, nil
}

// Login authenticates a user by email and password and returns a session
// token together with the stored first name and email. It is read-only:
// failed attempts mutate nothing.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !u.hasher.Verify(user.PasswordHash, password) {
		return nil, ErrWrongPassword
	}

	token, err := u.tokens.Sign(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	slog.Info("user logged in", "email", email, "user_id", user.ID)
	return &LoginResult{Token: token, UserName: user.FirstName, UserEmail: user.Email}, nil
}

// UpdateProfile sets the first name of the account identified by email and
// returns a fresh session token. The email identifies the account to mutate;
// it is supplied by the transport layer from a request header rather than
// derived from the caller's token.
func (u *authUsecase) UpdateProfile(ctx context.Context, email, firstName string) (*UpdateResult, error) {
	user, err := u.users.UpdateFirstName(ctx, email, firstName)
	if err != nil {
		return nil, err
	}

	token, err := u.tokens.Sign(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	slog.Info("user profile updated", "email", email, "user_id", user.ID)
	return &UpdateResult{Token: token}, nil
}
