package orders

import (
	"context"
	"errors"
	"fmt"

	"petstore-server/internal/domain/pets"
)

var ErrInvalidInput = errors.New("invalid input")

// PetFinder es lo único que este módulo necesita del módulo de mascotas:
// escanear para armar el inventario.
type PetFinder interface {
	Find(ctx context.Context, match func(pets.Pet) bool) ([]pets.Pet, error)
}

type Service struct {
	repo    Repository
	petRepo PetFinder
}

func NewService(repo Repository, petRepo PetFinder) *Service {
	return &Service{repo: repo, petRepo: petRepo}
}

// Get devuelve nil (sin error) cuando el id no existe.
func (s *Service) Get(ctx context.Context, id uint64) (*Order, error) {
	o, ok, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &o, nil
}

// Add registra una nueva orden.
//
// Ojo: el guard inspecciona Status, no ID (y el mensaje habla de "id").
// Es comportamiento histórico del endpoint y se conserva tal cual por
// compatibilidad hasta que producto defina la intención; ver DESIGN.md.
func (s *Service) Add(ctx context.Context, o Order) (Order, error) {
	if o.Status != nil {
		return Order{}, fmt.Errorf("%w: new order must not contain an id", ErrInvalidInput)
	}
	return s.repo.Add(ctx, o)
}

// Delete reporta si existía la orden; nunca falla por ausencia.
func (s *Service) Delete(ctx context.Context, id uint64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// Inventory escanea todas las mascotas y las cuenta por status. El escaneo
// y el conteo no son transaccionales respecto de otras repos: es una foto
// del repositorio de mascotas al momento del Find.
func (s *Service) Inventory(ctx context.Context) (Inventory, error) {
	all, err := s.petRepo.Find(ctx, func(pets.Pet) bool { return true })
	if err != nil {
		return Inventory{}, err
	}

	var inv Inventory
	for _, p := range all {
		if p.Status == nil {
			continue
		}
		switch *p.Status {
		case pets.StatusAvailable:
			inv.Available++
		case pets.StatusPending:
			inv.Pending++
		case pets.StatusAdopted:
			inv.Adopted++
		}
	}
	return inv, nil
}
