package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/port/mock"
	"github.com/rafaelleal24/catalog/internal/core/serviceerrors"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type productMocks struct {
	productRepo *mock.MockProductPort
	txManager   *mock.MockTransactionManager
	events      *mock.MockEventRecorder
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func setupProductService(t *testing.T) (*ProductService, *productMocks) {
	ctrl := gomock.NewController(t)
	m := &productMocks{
		productRepo: mock.NewMockProductPort(ctrl),
		txManager:   mock.NewMockTransactionManager(ctrl),
		events:      mock.NewMockEventRecorder(ctrl),
	}
	svc := NewProductService(m.productRepo, m.txManager, m.events)
	svc.now = func() time.Time { return fixedNow }
	return svc, m
}

func (m *productMocks) expectTransaction() {
	m.txManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestProductService_Save(t *testing.T) {
	t.Run("create assigns id and records created event", func(t *testing.T) {
		svc, m := setupProductService(t)
		m.expectTransaction()

		m.productRepo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *domain.Product) error {
				p.ID = 1
				return nil
			})
		m.events.EXPECT().
			Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e domain.Event) error {
				event, ok := e.(*domain.ProductEvent)
				if !ok {
					t.Fatalf("expected *domain.ProductEvent, got %T", e)
				}
				if event.GetName() != domain.ProductCreated {
					t.Fatalf("expected %s event, got %s", domain.ProductCreated, event.GetName())
				}
				if event.ProductID != 1 {
					t.Fatalf("expected event product id 1, got %d", event.ProductID)
				}
				if !event.OccurredAt.Equal(fixedNow) {
					t.Fatalf("expected occurred at %v, got %v", fixedNow, event.OccurredAt)
				}
				return nil
			})

		product, err := svc.Save(context.Background(), domain.NewProduct("Pen", price("1.50")))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if product.ID != 1 {
			t.Fatalf("expected id 1, got %d", product.ID)
		}
		if product.Title != "Pen" || !product.Price.Equal(price("1.50")) {
			t.Fatalf("unexpected product %+v", product)
		}
	})

	t.Run("update keeps id and records updated event", func(t *testing.T) {
		svc, m := setupProductService(t)
		m.expectTransaction()

		input := &domain.Product{ID: 5, Title: "Pencil", Price: price("0.99")}
		m.productRepo.EXPECT().Save(gomock.Any(), input).Return(nil)
		m.events.EXPECT().
			Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e domain.Event) error {
				if e.GetName() != domain.ProductUpdated {
					t.Fatalf("expected %s event, got %s", domain.ProductUpdated, e.GetName())
				}
				return nil
			})

		product, err := svc.Save(context.Background(), input)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if product.ID != 5 || product.Title != "Pencil" || !product.Price.Equal(price("0.99")) {
			t.Fatalf("expected {5, Pencil, 0.99}, got %+v", product)
		}
	})

	t.Run("invalid product never reaches the store", func(t *testing.T) {
		svc, _ := setupProductService(t)

		tests := []*domain.Product{
			domain.NewProduct("", price("1")),
			domain.NewProduct("Pen", price("-1")),
		}
		for _, p := range tests {
			product, err := svc.Save(context.Background(), p)
			if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
				t.Fatalf("expected InvalidRequest error, got %v", err)
			}
			if product != nil {
				t.Fatal("expected nil product on error")
			}
		}
	})

	t.Run("repository error aborts transaction", func(t *testing.T) {
		svc, m := setupProductService(t)
		m.expectTransaction()

		m.productRepo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		product, err := svc.Save(context.Background(), domain.NewProduct("Pen", price("1.50")))
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if product != nil {
			t.Fatal("expected nil product on error")
		}
	})

	t.Run("event error is returned", func(t *testing.T) {
		svc, m := setupProductService(t)
		m.expectTransaction()

		m.productRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		m.events.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("outbox unavailable"))

		if _, err := svc.Save(context.Background(), domain.NewProduct("Pen", price("1.50"))); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestProductService_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, m := setupProductService(t)
		expected := &domain.Product{ID: 3, Title: "Pen", Price: price("1.50")}

		m.productRepo.EXPECT().FindByID(gomock.Any(), domain.ID(3)).Return(expected, nil)

		product, err := svc.GetByID(context.Background(), 3)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if product.ID != expected.ID {
			t.Fatalf("expected product id %d, got %d", expected.ID, product.ID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := setupProductService(t)

		m.productRepo.EXPECT().
			FindByID(gomock.Any(), domain.ID(99)).
			Return(nil, serviceerrors.NewNotFoundError("product not found"))

		product, err := svc.GetByID(context.Background(), 99)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected NotFound error, got %v", err)
		}
		if product != nil {
			t.Fatal("expected nil product")
		}
	})
}

func TestProductService_Delete(t *testing.T) {
	t.Run("success records deleted event", func(t *testing.T) {
		svc, m := setupProductService(t)
		m.expectTransaction()

		m.productRepo.EXPECT().DeleteByID(gomock.Any(), domain.ID(4)).Return(nil)
		m.events.EXPECT().
			Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e domain.Event) error {
				event := e.(*domain.ProductEvent)
				if event.GetName() != domain.ProductDeleted || event.ProductID != 4 {
					t.Fatalf("unexpected event %+v", event)
				}
				return nil
			})

		if err := svc.Delete(context.Background(), 4); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("not found records nothing", func(t *testing.T) {
		svc, m := setupProductService(t)
		m.expectTransaction()

		m.productRepo.EXPECT().
			DeleteByID(gomock.Any(), domain.ID(4)).
			Return(serviceerrors.NewNotFoundError("product not found"))

		err := svc.Delete(context.Background(), 4)
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			t.Fatalf("expected NotFound error, got %v", err)
		}
	})
}

func TestProductService_FindAll(t *testing.T) {
	svc, m := setupProductService(t)
	page, err := domain.NewPageRequest(0, 20, domain.Sort{{Field: domain.SortByPrice, Direction: domain.Asc}})
	if err != nil {
		t.Fatalf("page request: %v", err)
	}
	expected := []*domain.Product{
		{ID: 1, Title: "Pencil", Price: price("0.99")},
		{ID: 2, Title: "Pen", Price: price("1.50")},
	}

	m.productRepo.EXPECT().FindPage(gomock.Any(), page).Return(expected, nil)

	products, err := svc.FindAll(context.Background(), page)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
}

func TestProductService_FindProductsByPriceBetween(t *testing.T) {
	page, _ := domain.NewPageRequest(0, 20, nil)

	t.Run("delegates inclusive bounds", func(t *testing.T) {
		svc, m := setupProductService(t)
		from, to := price("10"), price("20")
		expected := []*domain.Product{{ID: 1, Title: "Book", Price: price("10")}}

		m.productRepo.EXPECT().FindPageByPriceRange(gomock.Any(), page, from, to).Return(expected, nil)

		products, err := svc.FindProductsByPriceBetween(context.Background(), page, from, to)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(products) != 1 {
			t.Fatalf("expected 1 product, got %d", len(products))
		}
	})

	t.Run("equal bounds are allowed", func(t *testing.T) {
		svc, m := setupProductService(t)
		m.productRepo.EXPECT().FindPageByPriceRange(gomock.Any(), page, gomock.Any(), gomock.Any()).Return(nil, nil)

		if _, err := svc.FindProductsByPriceBetween(context.Background(), page, price("5"), price("5")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("from greater than to is rejected", func(t *testing.T) {
		svc, _ := setupProductService(t)

		_, err := svc.FindProductsByPriceBetween(context.Background(), page, price("20"), price("10"))
		if !serviceerrors.IsOfKind(err, serviceerrors.KindInvalidRequest) {
			t.Fatalf("expected InvalidRequest error, got %v", err)
		}
	})
}
