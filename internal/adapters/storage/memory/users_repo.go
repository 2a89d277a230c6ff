package memory

import (
	"context"
	"fmt"

	"petstore-server/internal/domain/users"
	"petstore-server/internal/platform/keyed"
)

type userRepo struct {
	users *keyed.Map[users.User]
}

func NewUserRepo() users.Repository {
	return &userRepo{users: keyed.NewMap[users.User]()}
}

// Add valida unicidad de username bajo el mismo write que inserta, así el
// chequeo y el alta son un solo acceso exclusivo.
func (r *userRepo) Add(ctx context.Context, u users.User) (users.User, error) {
	err := r.users.Write(func(items map[uint64]users.User) error {
		if u.ID != nil {
			return fmt.Errorf("%w: new user must not contain an id", users.ErrInvalidInput)
		}
		for _, existing := range items {
			if existing.Username == u.Username {
				return fmt.Errorf("%w: %s", users.ErrDuplicateUsername, u.Username)
			}
		}
		id := keyed.NextID(items)
		u.ID = &id
		items[id] = u
		return nil
	})
	if err != nil {
		return users.User{}, err
	}
	return u, nil
}

func (r *userRepo) FindOne(ctx context.Context, match func(users.User) bool) (users.User, bool, error) {
	var (
		found users.User
		ok    bool
	)
	err := r.users.Read(func(items map[uint64]users.User) error {
		for _, u := range items {
			if match(u) {
				found = u
				ok = true
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return users.User{}, false, err
	}
	return found, ok, nil
}

func (r *userRepo) Delete(ctx context.Context, username string) (*users.User, error) {
	var prev *users.User
	err := r.users.Write(func(items map[uint64]users.User) error {
		for id, u := range items {
			if u.Username == username {
				prev = &u
				delete(items, id)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return prev, nil
}

// Update localiza por username (clave natural), conserva el id asignado
// en el alta y reemplaza el registro completo.
func (r *userRepo) Update(ctx context.Context, u users.User) (users.User, error) {
	err := r.users.Write(func(items map[uint64]users.User) error {
		for id, existing := range items {
			if existing.Username == u.Username {
				u.ID = existing.ID
				items[id] = u
				return nil
			}
		}
		return users.ErrNotFound
	})
	if err != nil {
		return users.User{}, err
	}
	return u, nil
}
