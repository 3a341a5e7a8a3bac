package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"petmate/internal/ports/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type Service struct {
	repo   Repository
	issuer auth.Issuer
	now    func() time.Time
}

func NewService(repo Repository, issuer auth.Issuer) *Service {
	return &Service{
		repo:   repo,
		issuer: issuer,
		now:    time.Now,
	}
}

// Register crea una cuenta nueva. Username y password son obligatorios;
// username duplicado se rechaza.
func (s *Service) Register(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return User{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return User{}, ErrDuplicateUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Login valida credenciales y emite un token de sesión.
func (s *Service) Login(ctx context.Context, username, password string) (User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, "", ErrInvalidCredentials
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return User{}, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, "", ErrInvalidCredentials
	}

	tok, err := s.issuer.Issue(ctx, auth.Claims{UserID: u.ID, Username: u.Username})
	if err != nil {
		return User{}, "", err
	}
	return u, tok, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, id)
}

// DeleteAll borra todas las cuentas, como el botón "계정 삭제" del
// original. Los perfiles y logs quedan huérfanos; los lectores lo toleran.
func (s *Service) DeleteAll(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}
