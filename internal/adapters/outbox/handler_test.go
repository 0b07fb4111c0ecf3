package outbox_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rafaelleal24/catalog/internal/adapters/config"
	"github.com/rafaelleal24/catalog/internal/adapters/outbox"
	outboxmock "github.com/rafaelleal24/catalog/internal/adapters/outbox/mock"
	portmock "github.com/rafaelleal24/catalog/internal/core/port/mock"
	"go.uber.org/mock/gomock"
)

func setupHandler(t *testing.T, batch int) (*outbox.Handler, *portmock.MockBrokerPort, *outboxmock.MockRepository) {
	ctrl := gomock.NewController(t)
	broker := portmock.NewMockBrokerPort(ctrl)
	repo := outboxmock.NewMockRepository(ctrl)
	handler := outbox.NewHandler(repo, broker, config.OutboxConfig{
		Interval:  50 * time.Millisecond,
		BatchSize: batch,
	})
	return handler, broker, repo
}

func TestHandler_ProcessesAndDeletesEvents(t *testing.T) {
	handler, broker, repo := setupHandler(t, 10)

	entries := []outbox.Entry{
		{ID: "1", EventName: "product.created", EntityName: "product", EventData: []byte(`{"product_id":1}`)},
		{ID: "2", EventName: "product.updated", EntityName: "product", EventData: []byte(`{"product_id":2}`)},
	}

	repo.EXPECT().FetchPending(gomock.Any(), 10).Return(entries, nil)
	gomock.InOrder(
		broker.EXPECT().PublishRaw(gomock.Any(), "product.created", "product", []byte(`{"product_id":1}`)).Return(nil),
		repo.EXPECT().Delete(gomock.Any(), "1").Return(nil),
		broker.EXPECT().PublishRaw(gomock.Any(), "product.updated", "product", []byte(`{"product_id":2}`)).Return(nil),
		repo.EXPECT().Delete(gomock.Any(), "2").Return(nil),
	)

	if published := handler.ProcessPending(context.Background()); published != 2 {
		t.Fatalf("expected 2 published, got %d", published)
	}
}

func TestHandler_SkipsEventOnPublishFailure(t *testing.T) {
	handler, broker, repo := setupHandler(t, 10)

	entries := []outbox.Entry{
		{ID: "1", EventName: "product.deleted", EntityName: "product", EventData: []byte(`{"product_id":1}`)},
		{ID: "2", EventName: "product.created", EntityName: "product", EventData: []byte(`{"product_id":2}`)},
	}

	repo.EXPECT().FetchPending(gomock.Any(), 10).Return(entries, nil)
	// first entry stays in the outbox
	broker.EXPECT().PublishRaw(gomock.Any(), "product.deleted", "product", gomock.Any()).Return(errors.New("publish failed"))
	broker.EXPECT().PublishRaw(gomock.Any(), "product.created", "product", gomock.Any()).Return(nil)
	repo.EXPECT().Delete(gomock.Any(), "2").Return(nil)

	if published := handler.ProcessPending(context.Background()); published != 1 {
		t.Fatalf("expected 1 published, got %d", published)
	}
}

func TestHandler_HandlesEmptyOutbox(t *testing.T) {
	handler, _, repo := setupHandler(t, 10)

	repo.EXPECT().FetchPending(gomock.Any(), 10).Return(nil, nil)

	if published := handler.ProcessPending(context.Background()); published != 0 {
		t.Fatalf("expected 0 published, got %d", published)
	}
}

func TestHandler_HandlesFetchError(t *testing.T) {
	handler, _, repo := setupHandler(t, 10)

	repo.EXPECT().FetchPending(gomock.Any(), 10).Return(nil, errors.New("db down"))

	if published := handler.ProcessPending(context.Background()); published != 0 {
		t.Fatalf("expected 0 published, got %d", published)
	}
}

func TestHandler_DeleteFailureStillCountsAsPublished(t *testing.T) {
	handler, broker, repo := setupHandler(t, 10)

	entries := []outbox.Entry{
		{ID: "1", EventName: "product.created", EntityName: "product", EventData: []byte(`{"product_id":1}`)},
	}

	repo.EXPECT().FetchPending(gomock.Any(), 10).Return(entries, nil)
	broker.EXPECT().PublishRaw(gomock.Any(), "product.created", "product", gomock.Any()).Return(nil)
	repo.EXPECT().Delete(gomock.Any(), "1").Return(errors.New("delete failed"))

	if published := handler.ProcessPending(context.Background()); published != 1 {
		t.Fatalf("expected 1 published, got %d", published)
	}
}

func TestHandler_StopsPublishingWhenContextCancelled(t *testing.T) {
	handler, _, repo := setupHandler(t, 10)

	ctx, cancel := context.WithCancel(context.Background())
	repo.EXPECT().FetchPending(gomock.Any(), 10).DoAndReturn(func(context.Context, int) ([]outbox.Entry, error) {
		cancel()
		return []outbox.Entry{{ID: "1", EventName: "product.created", EntityName: "product"}}, nil
	})

	if published := handler.ProcessPending(ctx); published != 0 {
		t.Fatalf("expected 0 published, got %d", published)
	}
}

func TestHandler_StartPollsOnInterval(t *testing.T) {
	handler, _, repo := setupHandler(t, 5)

	polled := make(chan struct{}, 1)
	repo.EXPECT().FetchPending(gomock.Any(), 5).DoAndReturn(func(context.Context, int) ([]outbox.Entry, error) {
		select {
		case polled <- struct{}{}:
		default:
		}
		return nil, nil
	}).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		handler.Start(ctx)
		close(done)
	}()

	select {
	case <-polled:
	case <-time.After(2 * time.Second):
		t.Fatal("handler never polled the outbox")
	}
	cancel()
	<-done
}

func TestHandler_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	broker := portmock.NewMockBrokerPort(ctrl)
	repo := outboxmock.NewMockRepository(ctrl)

	handler := outbox.NewHandler(repo, broker, config.OutboxConfig{
		Interval:  1 * time.Hour,
		BatchSize: 10,
	})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		handler.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not stop after context cancellation")
	}
}
