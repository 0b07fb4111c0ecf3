package outbox

import (
	"context"
	"time"
)

// Entry is a serialized domain event waiting to be relayed to the broker.
type Entry struct {
	ID         string
	EventName  string
	EntityName string
	EventData  []byte
	CreatedAt  time.Time
}

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
type Repository interface {
	// Insert joins the transaction carried by ctx, if any.
	Insert(ctx context.Context, entry Entry) error
	// FetchPending returns the oldest entries first.
	FetchPending(ctx context.Context, limit int) ([]Entry, error)
	Delete(ctx context.Context, id string) error
}
