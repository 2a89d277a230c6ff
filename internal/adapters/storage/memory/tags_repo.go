package memory

import (
	"context"
	"fmt"

	"petstore-server/internal/domain/pets"
	"petstore-server/internal/platform/keyed"
)

// Los repos de tags y categorías solo exponen el alta: los registros nacen
// únicamente por la cascada de creación de mascotas.

type tagRepo struct {
	tags *keyed.Map[pets.Tag]
}

func NewTagRepo() pets.TagRepository {
	return &tagRepo{tags: keyed.NewMap[pets.Tag]()}
}

func (r *tagRepo) Add(ctx context.Context, t pets.Tag) (pets.Tag, error) {
	err := r.tags.Write(func(items map[uint64]pets.Tag) error {
		if t.ID != nil {
			return fmt.Errorf("%w: new tag must not contain an id", pets.ErrInvalidInput)
		}
		id := keyed.NextID(items)
		t.ID = &id
		items[id] = t
		return nil
	})
	if err != nil {
		return pets.Tag{}, err
	}
	return t, nil
}

type categoryRepo struct {
	categories *keyed.Map[pets.Category]
}

func NewCategoryRepo() pets.CategoryRepository {
	return &categoryRepo{categories: keyed.NewMap[pets.Category]()}
}

func (r *categoryRepo) Add(ctx context.Context, c pets.Category) (pets.Category, error) {
	err := r.categories.Write(func(items map[uint64]pets.Category) error {
		if c.ID != nil {
			return fmt.Errorf("%w: new category must not contain an id", pets.ErrInvalidInput)
		}
		id := keyed.NextID(items)
		c.ID = &id
		items[id] = c
		return nil
	})
	if err != nil {
		return pets.Category{}, err
	}
	return c, nil
}
