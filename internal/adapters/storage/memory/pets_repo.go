package memory

import (
	"context"
	"fmt"
	"sort"

	"petstore-server/internal/domain/pets"
	"petstore-server/internal/platform/keyed"
)

type petRepo struct {
	pets *keyed.Map[pets.Pet]
}

func NewPetRepo() pets.Repository {
	return &petRepo{pets: keyed.NewMap[pets.Pet]()}
}

func (r *petRepo) Get(ctx context.Context, id uint64) (pets.Pet, bool, error) {
	var (
		p  pets.Pet
		ok bool
	)
	err := r.pets.Read(func(items map[uint64]pets.Pet) error {
		p, ok = items[id]
		return nil
	})
	return p, ok, err
}

func (r *petRepo) Find(ctx context.Context, match func(pets.Pet) bool) ([]pets.Pet, error) {
	var out []pets.Pet
	err := r.pets.Read(func(items map[uint64]pets.Pet) error {
		out = make([]pets.Pet, 0)
		for _, p := range items {
			if match(p) {
				out = append(out, p)
			}
		}
		// Una mascota almacenada siempre tiene id asignado; si el puntero
		// viene nil acá el estado está corrupto y el panic es deliberado.
		sort.Slice(out, func(i, j int) bool {
			return *out[i].ID < *out[j].ID
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *petRepo) Add(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	err := r.pets.Write(func(items map[uint64]pets.Pet) error {
		if p.ID != nil {
			return fmt.Errorf("%w: new pet must not contain an id", pets.ErrInvalidInput)
		}
		id := keyed.NextID(items)
		p.ID = &id
		items[id] = p
		return nil
	})
	if err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	err := r.pets.Write(func(items map[uint64]pets.Pet) error {
		if p.ID == nil {
			return pets.ErrMissingIdentifier
		}
		if _, ok := items[*p.ID]; !ok {
			return pets.ErrNotFound
		}
		items[*p.ID] = p
		return nil
	})
	if err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *petRepo) Delete(ctx context.Context, id uint64) (*pets.Pet, error) {
	var prev *pets.Pet
	err := r.pets.Write(func(items map[uint64]pets.Pet) error {
		if p, ok := items[id]; ok {
			prev = &p
			delete(items, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return prev, nil
}

func (r *petRepo) UpdateNameStatus(ctx context.Context, id uint64, name *string, status *pets.Status) (pets.Pet, error) {
	var updated pets.Pet
	err := r.pets.Write(func(items map[uint64]pets.Pet) error {
		p, ok := items[id]
		if !ok {
			return pets.ErrNotFound
		}
		if name != nil {
			p.Name = *name
		}
		if status != nil {
			p.Status = status
		}
		items[id] = p
		updated = p
		return nil
	})
	if err != nil {
		return pets.Pet{}, err
	}
	return updated, nil
}
