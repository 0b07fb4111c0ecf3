package memory

import (
	"context"
	"slices"
	"strconv"
	"sync"

	"github.com/rafaelleal24/catalog/internal/adapters/outbox"
)

type OutboxRepository struct {
	mu      sync.Mutex
	entries []outbox.Entry
	nextID  int
}

func NewOutboxRepository() *OutboxRepository {
	return &OutboxRepository{}
}

func (r *OutboxRepository) Insert(_ context.Context, entry outbox.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	entry.ID = strconv.Itoa(r.nextID)
	r.entries = append(r.entries, entry)
	return nil
}

func (r *OutboxRepository) FetchPending(_ context.Context, limit int) ([]outbox.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := min(limit, len(r.entries))
	return slices.Clone(r.entries[:n]), nil
}

func (r *OutboxRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = slices.DeleteFunc(r.entries, func(e outbox.Entry) bool { return e.ID == id })
	return nil
}

func (r *OutboxRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
