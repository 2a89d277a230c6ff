package memory

import (
	"context"

	"petstore-server/internal/domain/orders"
	"petstore-server/internal/platform/keyed"
)

type orderRepo struct {
	orders *keyed.Map[orders.Order]
}

func NewOrderRepo() orders.Repository {
	return &orderRepo{orders: keyed.NewMap[orders.Order]()}
}

func (r *orderRepo) Get(ctx context.Context, id uint64) (orders.Order, bool, error) {
	var (
		o  orders.Order
		ok bool
	)
	err := r.orders.Read(func(items map[uint64]orders.Order) error {
		o, ok = items[id]
		return nil
	})
	return o, ok, err
}

func (r *orderRepo) Add(ctx context.Context, o orders.Order) (orders.Order, error) {
	err := r.orders.Write(func(items map[uint64]orders.Order) error {
		id := keyed.NextID(items)
		o.ID = &id
		items[id] = o
		return nil
	})
	if err != nil {
		return orders.Order{}, err
	}
	return o, nil
}

func (r *orderRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	var existed bool
	err := r.orders.Write(func(items map[uint64]orders.Order) error {
		if _, ok := items[id]; ok {
			existed = true
			delete(items, id)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return existed, nil
}
