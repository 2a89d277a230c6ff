package users

import (
	"context"
	"errors"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already taken")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(ctx context.Context, u User) (User, error) {
	return s.repo.Add(ctx, u)
}

// AddAll da de alta la lista en orden. No es atómico: el primer fallo
// corta el resto, y lo ya insertado queda insertado (p.ej. un username
// duplicado a mitad de lista deja persistidas las entradas previas).
func (s *Service) AddAll(ctx context.Context, list []User) ([]string, error) {
	names := make([]string, 0, len(list))
	for _, u := range list {
		stored, err := s.Add(ctx, u)
		if err != nil {
			return nil, err
		}
		names = append(names, stored.Username)
	}
	return names, nil
}

// Get devuelve nil (sin error) cuando el username no existe.
func (s *Service) Get(ctx context.Context, username string) (*User, error) {
	u, ok, err := s.repo.FindOne(ctx, func(u User) bool { return u.Username == username })
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// Delete es idempotente: borrar un username inexistente no es error.
func (s *Service) Delete(ctx context.Context, username string) error {
	_, err := s.repo.Delete(ctx, username)
	return err
}

// Update reemplaza el usuario localizado por username; falla con
// ErrNotFound si no existe.
func (s *Service) Update(ctx context.Context, u User) (User, error) {
	return s.repo.Update(ctx, u)
}
