package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/normanmgu/aw-assesment-pokemon-team-builder/internal/entities"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

// Register creates a new user with a bcrypt-hashed password.
func (u *Usecase) Register(ctx context.Context, username, password, displayName string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if username == "" {
		return nil, fmt.Errorf("%w: username is required", entities.ErrInvalidArgument)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", entities.ErrInvalidArgument, minPasswordLen)
	}
	if displayName == "" {
		displayName = username
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	return u.repo.CreateUser(ctx, entities.User{
		ID:           uuid.NewString(),
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: string(hash),
	})
}

// Login verifies credentials and issues a fresh session token.
func (u *Usecase) Login(ctx context.Context, username, password string) (string, *entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if username == "" || password == "" {
		return "", nil, fmt.Errorf("%w: username and password are required", entities.ErrInvalidArgument)
	}

	user, err := u.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return "", nil, entities.ErrBadCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, entities.ErrBadCredentials
	}

	token, err := u.sessions.Create(ctx, user.ID)
	if err != nil {
		return "", nil, err
	}

	u.log.Infow("user logged in", "user_id", user.ID)
	return token, user, nil
}

// Logout invalidates the session token.
func (u *Usecase) Logout(ctx context.Context, token string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if token == "" {
		return entities.ErrUnauthorized
	}
	return u.sessions.Destroy(ctx, token)
}

// Authenticate resolves the principal behind an opaque session token. Every
// protected operation runs through here first; an unresolvable token stops the
// request before any resource is touched.
func (u *Usecase) Authenticate(ctx context.Context, token string) (*entities.Principal, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if token == "" {
		return nil, entities.ErrUnauthorized
	}

	userID, err := u.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := u.repo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, entities.ErrUnauthorized
		}
		return nil, err
	}

	return &entities.Principal{ID: user.ID, Name: user.DisplayName}, nil
}
