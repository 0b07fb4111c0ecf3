package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/port"
)

type Recorder struct {
	outbox Repository
	now    func() time.Time
}

var _ port.EventRecorder = (*Recorder)(nil)

func NewRecorder(outbox Repository) *Recorder {
	return &Recorder{outbox: outbox, now: time.Now}
}

func (r *Recorder) Record(ctx context.Context, event domain.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event.GetName(), err)
	}
	return r.outbox.Insert(ctx, Entry{
		EventName:  event.GetName(),
		EntityName: event.GetEntityName(),
		EventData:  data,
		CreatedAt:  r.now().UTC(),
	})
}
