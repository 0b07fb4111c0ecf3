package postgres

import (
	"context"
	"strconv"
	"time"

	"github.com/rafaelleal24/catalog/internal/adapters/outbox"
	"github.com/rafaelleal24/catalog/internal/core/serviceerrors"
)

const (
	insertOutboxSQL  = `INSERT INTO outbox (event_name, entity_name, event_data, created_at) VALUES ($1, $2, $3, $4)`
	pendingOutboxSQL = `SELECT id, event_name, entity_name, event_data, created_at FROM outbox ORDER BY created_at, id LIMIT $1`
	deleteOutboxSQL  = `DELETE FROM outbox WHERE id = $1`
)

type OutboxRepository struct {
	pool DBPool
}

func NewOutboxRepository(pool DBPool) outbox.Repository {
	return &OutboxRepository{pool: pool}
}

func (r *OutboxRepository) Insert(ctx context.Context, entry outbox.Entry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := conn(ctx, r.pool).Exec(ctx, insertOutboxSQL, entry.EventName, entry.EntityName, string(entry.EventData), createdAt)
	if err != nil {
		return parseError(err, "outbox entry")
	}
	return nil
}

func (r *OutboxRepository) FetchPending(ctx context.Context, limit int) ([]outbox.Entry, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, pendingOutboxSQL, limit)
	if err != nil {
		return nil, parseError(err, "outbox entry")
	}
	defer rows.Close()

	entries := []outbox.Entry{}
	for rows.Next() {
		var (
			id   int64
			data string
			e    outbox.Entry
		)
		if err := rows.Scan(&id, &e.EventName, &e.EntityName, &data, &e.CreatedAt); err != nil {
			return nil, parseError(err, "outbox entry")
		}
		e.ID = strconv.FormatInt(id, 10)
		e.EventData = []byte(data)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, parseError(err, "outbox entry")
	}
	return entries, nil
}

func (r *OutboxRepository) Delete(ctx context.Context, id string) error {
	value, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return serviceerrors.NewInvalidRequestError("invalid outbox entry id")
	}
	if _, err := conn(ctx, r.pool).Exec(ctx, deleteOutboxSQL, value); err != nil {
		return parseError(err, "outbox entry")
	}
	return nil
}
