package memory

import (
	"context"
	"sync"

	"github.com/rafaelleal24/catalog/internal/core/port"
)

// TransactionManager serializes units of work. Writes made before a failure are not rolled back.
type TransactionManager struct {
	mu sync.Mutex
}

var _ port.TransactionManager = (*TransactionManager)(nil)

func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

func (m *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}
