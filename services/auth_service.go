//go:generate go run go.uber.org/mock/mockgen -source=auth_service.go -destination=../mocks/mock_auth_service.go -package=mocks
package services

import (
	"fmt"

	"chat-direct/auth"
	"chat-direct/errors"
	"chat-direct/repositories"
)

type IAuthService interface {
	Register(email, username, password string) (Token, error)
	Login(email, password string) (Token, error)
}

type Token string

type AuthService struct {
	users  repositories.IUserRepository
	issuer *auth.TokenIssuer
}

func NewAuthService(users repositories.IUserRepository, issuer *auth.TokenIssuer) *AuthService {
	return &AuthService{users: users, issuer: issuer}
}

func (s *AuthService) Register(email, username, password string) (Token, error) {
	valReq := auth.RegisterRequest{
		Email:    email,
		Username: username,
		Password: password,
	}

	// Business rules first; no expensive cryptographic work on bad input.
	if err := auth.ValidateRegister(valReq); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidPassword, err)
	}

	// Hashing stays in the service layer so the repository never sees a
	// plain password.
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}

	account, err := s.users.CreateUser(email, username, hashedPassword)
	if err != nil {
		return "", err
	}

	token, err := s.issuer.Generate(account.ID, account.Username)
	if err != nil {
		return "", fmt.Errorf("token generation failed: %w", err)
	}
	return Token(token), nil
}

func (s *AuthService) Login(email, password string) (Token, error) {
	account, err := s.users.GetByEmail(email)
	if err != nil {
		// Hide whether the account exists.
		return "", errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, account.PasswordHash)
	if err != nil || !match {
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.issuer.Generate(account.ID, account.Username)
	if err != nil {
		return "", fmt.Errorf("token generation failed: %w", err)
	}
	return Token(token), nil
}
