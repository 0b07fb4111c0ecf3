package memory

import (
	"context"
	"testing"

	"github.com/rafaelleal24/catalog/internal/adapters/outbox"
)

func TestOutboxRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewOutboxRepository()

	for _, name := range []string{"product.created", "product.updated", "product.deleted"} {
		if err := repo.Insert(ctx, outbox.Entry{EventName: name, EntityName: "product"}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	pending, err := repo.FetchPending(ctx, 2)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(pending))
	}
	if pending[0].EventName != "product.created" || pending[0].ID == "" {
		t.Fatalf("expected oldest entry first with id, got %+v", pending[0])
	}

	if err := repo.Delete(ctx, pending[0].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if repo.Len() != 2 {
		t.Fatalf("expected 2 remaining, got %d", repo.Len())
	}

	rest, _ := repo.FetchPending(ctx, 10)
	if rest[0].EventName != "product.updated" {
		t.Fatalf("expected product.updated next, got %q", rest[0].EventName)
	}
}

func TestTransactionManager_PropagatesError(t *testing.T) {
	tm := NewTransactionManager()
	want := context.Canceled

	err := tm.WithTransaction(context.Background(), func(context.Context) error { return want })
	if err != want {
		t.Fatalf("expected %v, got %v", want, err)
	}
}
