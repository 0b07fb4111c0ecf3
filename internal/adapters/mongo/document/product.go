package document

import (
	"fmt"

	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductDocument struct {
	ID    int64                `bson:"_id"`
	Title string               `bson:"title"`
	Price primitive.Decimal128 `bson:"price"`
}

func (doc ProductDocument) GetID() any {
	return doc.ID
}

func (doc *ProductDocument) ToDomain() (*domain.Product, error) {
	price, err := decimal.NewFromString(doc.Price.String())
	if err != nil {
		return nil, fmt.Errorf("product %d has invalid price %q: %w", doc.ID, doc.Price.String(), err)
	}
	return &domain.Product{
		ID:    domain.ID(doc.ID),
		Title: doc.Title,
		Price: price,
	}, nil
}

func ToProductDocument(p *domain.Product) (*ProductDocument, error) {
	price, err := primitive.ParseDecimal128(p.Price.String())
	if err != nil {
		return nil, fmt.Errorf("price %s does not fit decimal128: %w", p.Price, err)
	}
	return &ProductDocument{
		ID:    int64(p.ID),
		Title: p.Title,
		Price: price,
	}, nil
}
