package dto

import (
	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type ProductRequest struct {
	Title string           `json:"title" binding:"required" example:"Pen"`
	Price *decimal.Decimal `json:"price" binding:"required" swaggertype:"number" example:"1.50"`
}

func (r *ProductRequest) ToModel() *domain.Product {
	price := decimal.Zero
	if r.Price != nil {
		price = *r.Price
	}
	return domain.NewProduct(r.Title, price)
}

type ProductResponse struct {
	ID    int64           `json:"id" example:"1"`
	Title string          `json:"title" example:"Pen"`
	Price decimal.Decimal `json:"price" swaggertype:"number" example:"1.50"`
}

func NewProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:    int64(product.ID),
		Title: product.Title,
		Price: product.Price,
	}
}

func NewProductResponses(products []*domain.Product) []ProductResponse {
	response := make([]ProductResponse, len(products))
	for i, product := range products {
		response[i] = NewProductResponse(product)
	}
	return response
}
