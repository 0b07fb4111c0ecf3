package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID    ID
	Title string
	Price decimal.Decimal
}

func NewProduct(title string, price decimal.Decimal) *Product {
	return &Product{
		Title: title,
		Price: price,
	}
}

func (p *Product) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return NewValidationError("title", "title is required")
	}
	if p.Price.IsNegative() {
		return NewValidationError("price", "price must not be negative")
	}
	return nil
}

const (
	ProductCreated = "product.created"
	ProductUpdated = "product.updated"
	ProductDeleted = "product.deleted"
)

type ProductEvent struct {
	Name       string          `json:"-"`
	ProductID  ID              `json:"product_id"`
	Title      string          `json:"title,omitempty"`
	Price      decimal.Decimal `json:"price"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func (e *ProductEvent) GetName() string {
	return e.Name
}

func (e *ProductEvent) GetEntityName() string {
	return "product"
}

func NewProductSavedEvent(p *Product, created bool, occurredAt time.Time) *ProductEvent {
	name := ProductUpdated
	if created {
		name = ProductCreated
	}
	return &ProductEvent{
		Name:       name,
		ProductID:  p.ID,
		Title:      p.Title,
		Price:      p.Price,
		OccurredAt: occurredAt,
	}
}

func NewProductDeletedEvent(id ID, occurredAt time.Time) *ProductEvent {
	return &ProductEvent{
		Name:       ProductDeleted,
		ProductID:  id,
		OccurredAt: occurredAt,
	}
}
