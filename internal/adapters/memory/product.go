package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/port"
	"github.com/rafaelleal24/catalog/internal/core/serviceerrors"
	"github.com/shopspring/decimal"
)

// ProductRepository keeps products in process memory. Returned products are copies.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[domain.ID]domain.Product
	lastID   domain.ID
}

var _ port.ProductPort = (*ProductRepository)(nil)

func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: make(map[domain.ID]domain.Product)}
}

func (r *ProductRepository) Save(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID.IsZero() {
		r.lastID++
		product.ID = r.lastID
	} else if product.ID > r.lastID {
		r.lastID = product.ID
	}
	r.products[product.ID] = *product
	return nil
}

func (r *ProductRepository) FindByID(_ context.Context, id domain.ID) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, serviceerrors.NewNotFoundError("product not found")
	}
	return &product, nil
}

func (r *ProductRepository) DeleteByID(_ context.Context, id domain.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return serviceerrors.NewNotFoundError("product not found")
	}
	delete(r.products, id)
	return nil
}

func (r *ProductRepository) FindPage(_ context.Context, page domain.PageRequest) ([]*domain.Product, error) {
	return r.page(page, func(*domain.Product) bool { return true }), nil
}

func (r *ProductRepository) FindPageByPriceRange(_ context.Context, page domain.PageRequest, from, to decimal.Decimal) ([]*domain.Product, error) {
	return r.page(page, func(p *domain.Product) bool {
		return p.Price.GreaterThanOrEqual(from) && p.Price.LessThanOrEqual(to)
	}), nil
}

func (r *ProductRepository) page(page domain.PageRequest, match func(*domain.Product) bool) []*domain.Product {
	r.mu.RLock()
	matched := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		if match(&product) {
			matched = append(matched, &product)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(matched, page.Sort.Compare)

	offset := page.Offset()
	if offset < 0 || offset >= len(matched) {
		return []*domain.Product{}
	}
	end := min(offset+page.Size, len(matched))
	return matched[offset:end]
}

func (r *ProductRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products)
}
