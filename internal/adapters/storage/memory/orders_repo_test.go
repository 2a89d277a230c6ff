package memory_test

import (
	"context"
	"testing"

	mem "petstore-server/internal/adapters/storage/memory"
	"petstore-server/internal/domain/orders"
)

func TestOrderRepo_AddAssignsIDAndGetRoundTrips(t *testing.T) {
	ctx := context.Background()
	repo := mem.NewOrderRepo()

	petID := uint64(3)
	qty := uint64(2)
	stored, err := repo.Add(ctx, orders.Order{PetID: &petID, Quantity: &qty})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if stored.ID == nil || *stored.ID != 0 {
		t.Fatalf("expected id 0, got %v", stored.ID)
	}

	got, ok, err := repo.Get(ctx, 0)
	if err != nil || !ok {
		t.Fatalf("get failed: ok=%v err=%v", ok, err)
	}
	if *got.PetID != petID || *got.Quantity != qty {
		t.Fatalf("unexpected stored order: %+v", got)
	}
}

func TestOrderRepo_DeleteReportsExistence(t *testing.T) {
	ctx := context.Background()
	repo := mem.NewOrderRepo()

	if _, err := repo.Add(ctx, orders.Order{}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	existed, err := repo.Delete(ctx, 0)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !existed {
		t.Fatal("expected existed=true")
	}

	existed, err = repo.Delete(ctx, 0)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if existed {
		t.Fatal("expected existed=false for absent id, without error")
	}
}
