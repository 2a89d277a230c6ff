package users

import "context"

// Repository es el contrato de almacenamiento de usuarios.
// Add valida la unicidad de username en el momento del alta (chequeo
// real, no eventual). FindOne devuelve (User vacío, false, nil) sin match.
type Repository interface {
	Add(ctx context.Context, u User) (User, error)
	FindOne(ctx context.Context, match func(User) bool) (User, bool, error)
	// Delete busca por username y devuelve el valor removido, o nil si el
	// username no existía (sin error).
	Delete(ctx context.Context, username string) (*User, error)
	// Update localiza el registro por username, conserva el id existente
	// sobre el valor entrante y reemplaza el registro completo.
	Update(ctx context.Context, u User) (User, error)
}
