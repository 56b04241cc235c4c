// Package users implements the authentication service: registration with
// salted password hashing, login with token issuance, and user lookups.
package users

import (
	"context"
	"errors"
	"fmt"

	"taskkeeper/internal/common"
	"taskkeeper/internal/server/auth"
)

// LoginResult pairs the authenticated user id with a freshly issued token.
type LoginResult struct {
	UserID string
	Token  string
}

// Service orchestrates registration and login over a user Repository,
// a PasswordHasher, and a TokenService.
type Service struct {
	repo   Repository
	hasher auth.PasswordHasher
	tokens *auth.TokenService
}

func NewService(repo Repository, hasher auth.PasswordHasher, tokens *auth.TokenService) *Service {
	return &Service{repo: repo, hasher: hasher, tokens: tokens}
}

// Register validates the input, hashes the password, and persists a new
// user. A taken email yields common.ErrorAlreadyExists.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {

	if err := in.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByEmail(ctx, in.Email); err == nil {
		return nil, common.ErrorAlreadyExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking email: %v", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %v", err)
	}

	user := &User{
		ID:           NewID(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}

	return user, nil
}

// Login verifies the credential pair and issues an identity token.
// Unknown email and wrong password are indistinguishable to the caller:
// both yield common.ErrorUnauthorized.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &LoginResult{UserID: user.ID, Token: token}, nil
}

// List returns all registered users. Password hashes stay inside the
// service boundary; the model never serializes them.
func (s *Service) List(ctx context.Context) ([]*User, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %v", err)
	}
	return result, nil
}
