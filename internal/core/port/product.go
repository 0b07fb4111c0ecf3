package port

import (
	"context"

	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

type ProductPort interface {
	// Save assigns an ID when product.ID is zero, otherwise writes the product under its ID.
	Save(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id domain.ID) (*domain.Product, error)
	DeleteByID(ctx context.Context, id domain.ID) error
	FindPage(ctx context.Context, page domain.PageRequest) ([]*domain.Product, error)
	FindPageByPriceRange(ctx context.Context, page domain.PageRequest, from, to decimal.Decimal) ([]*domain.Product, error)
}
