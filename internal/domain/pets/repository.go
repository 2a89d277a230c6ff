package pets

import "context"

// Repository es el contrato de almacenamiento de mascotas.
// Get devuelve (Pet vacío, false, nil) cuando el id no existe: "no estar"
// no es un error a este nivel. Find devuelve los matches ordenados por id
// ascendente. Add asigna el id y devuelve el valor almacenado.
type Repository interface {
	Get(ctx context.Context, id uint64) (Pet, bool, error)
	Find(ctx context.Context, match func(Pet) bool) ([]Pet, error)
	Add(ctx context.Context, p Pet) (Pet, error)
	Update(ctx context.Context, p Pet) (Pet, error)
	// Delete devuelve el valor previo, o nil si el id no existía.
	Delete(ctx context.Context, id uint64) (*Pet, error)
	// UpdateNameStatus aplica un patch parcial: solo toca los campos no-nil.
	UpdateNameStatus(ctx context.Context, id uint64, name *string, status *Status) (Pet, error)
}

// TagRepository solo expone el alta; los tags nacen únicamente por la
// cascada de AddPet.
type TagRepository interface {
	Add(ctx context.Context, t Tag) (Tag, error)
}

type CategoryRepository interface {
	Add(ctx context.Context, c Category) (Category, error)
}
