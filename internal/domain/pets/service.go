package pets

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrMissingIdentifier = errors.New("missing identifier")
	ErrNotFound          = errors.New("pet not found")
)

// Service implementa los casos de uso de mascotas, incluida la cascada
// de alta de tags/categorías sobre sus repositorios independientes.
type Service struct {
	repo       Repository
	tags       TagRepository
	categories CategoryRepository
}

func NewService(repo Repository, tags TagRepository, categories CategoryRepository) *Service {
	return &Service{repo: repo, tags: tags, categories: categories}
}

// Get devuelve nil (sin error) cuando el id no existe; el adapter decide
// cómo representar la ausencia.
func (s *Service) Get(ctx context.Context, id uint64) (*Pet, error) {
	p, ok, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// Add persiste la mascota y después registra cada tag y la categoría
// embebidos en sus propios repositorios. Las altas son independientes y
// NO atómicas: si un tag falla, la mascota ya quedó persistida. Eso
// replica el comportamiento histórico del sistema (ver DESIGN.md).
func (s *Service) Add(ctx context.Context, p Pet) (Pet, error) {
	stored, err := s.repo.Add(ctx, p)
	if err != nil {
		return Pet{}, err
	}

	for _, t := range stored.Tags {
		if t.ID != nil {
			return Pet{}, fmt.Errorf("%w: new tag must not contain an id", ErrInvalidInput)
		}
		if _, err := s.tags.Add(ctx, t); err != nil {
			return Pet{}, err
		}
	}
	if c := stored.Category; c != nil {
		if c.ID != nil {
			return Pet{}, fmt.Errorf("%w: new category must not contain an id", ErrInvalidInput)
		}
		if _, err := s.categories.Add(ctx, *c); err != nil {
			return Pet{}, err
		}
	}

	return stored, nil
}

// Update reemplaza la mascota completa. Exige id presente y existente.
func (s *Service) Update(ctx context.Context, p Pet) (Pet, error) {
	if p.ID == nil {
		return Pet{}, fmt.Errorf("%w: update requires a pet id", ErrMissingIdentifier)
	}
	return s.repo.Update(ctx, p)
}

// Delete falla con ErrNotFound si el id no existe. Ojo: a nivel repositorio
// borrar un id ausente no es error; la asimetría la aporta este servicio.
func (s *Service) Delete(ctx context.Context, id uint64) error {
	prev, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if prev == nil {
		return ErrNotFound
	}
	return nil
}

// FindByStatus usa semántica OR: matchea si el status está en la lista
// pedida, o si la mascota no tiene status (sin status = matchea todo).
func (s *Service) FindByStatus(ctx context.Context, statuses []Status) ([]Pet, error) {
	return s.repo.Find(ctx, func(p Pet) bool {
		if p.Status == nil {
			return true
		}
		for _, st := range statuses {
			if *p.Status == st {
				return true
			}
		}
		return false
	})
}

// FindByTags usa semántica AND: la mascota debe tener TODAS las etiquetas
// pedidas. Con lista vacía matchean todas (incluidas las sin tags).
func (s *Service) FindByTags(ctx context.Context, tags []string) ([]Pet, error) {
	return s.repo.Find(ctx, func(p Pet) bool {
		for _, name := range tags {
			if !p.HasTag(name) {
				return false
			}
		}
		return true
	})
}

// UpdateNameStatus aplica un patch parcial de nombre y/o status.
func (s *Service) UpdateNameStatus(ctx context.Context, id uint64, name *string, status *Status) (Pet, error) {
	return s.repo.UpdateNameStatus(ctx, id, name, status)
}
