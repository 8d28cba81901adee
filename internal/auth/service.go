package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=auth
type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	CountUsers(ctx context.Context) (int, error)
}

type Service struct {
	repo   Repository
	tokens *TokenService
	cost   int
}

func NewService(repo Repository, tokens *TokenService) *Service {
	return &Service{repo: repo, tokens: tokens, cost: bcrypt.DefaultCost}
}

type InitParams struct {
	Name     string
	Email    string
	Password string
}

// Init creates the bootstrap profile. It only works on an empty user table;
// once any profile exists the endpoint conflicts.
func (s *Service) Init(ctx context.Context, params InitParams) (*User, error) {
	if params.Email == "" || params.Password == "" {
		return nil, errors.New("email and password are required")
	}

	count, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting users: %w", err)
	}

	if count > 0 {
		return nil, ErrAlreadyInitialized
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &User{
		Name:         params.Name,
		Email:        strings.ToLower(strings.TrimSpace(params.Email)),
		PasswordHash: string(hash),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and returns a signed bearer token. Unknown
// email and wrong password fail identically.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrInvalidCredentials
		}

		return "", fmt.Errorf("looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("issuing token: %w", err)
	}

	return token, nil
}
