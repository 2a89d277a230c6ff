package orders

import "context"

// Repository es el contrato de almacenamiento de órdenes.
type Repository interface {
	Get(ctx context.Context, id uint64) (Order, bool, error)
	Add(ctx context.Context, o Order) (Order, error)
	// Delete reporta si había una orden con ese id; borrar un id ausente
	// no es error (contrato distinto al delete de mascotas, a propósito).
	Delete(ctx context.Context, id uint64) (bool, error)
}
