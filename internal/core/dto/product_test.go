package dto

import (
	"encoding/json"
	"testing"

	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/shopspring/decimal"
)

func TestProductRequest_ToModel(t *testing.T) {
	price := decimal.RequireFromString("1.50")
	req := &ProductRequest{Title: "Pen", Price: &price}

	product := req.ToModel()
	if !product.ID.IsZero() {
		t.Fatalf("expected no id, got %d", product.ID)
	}
	if product.Title != "Pen" {
		t.Fatalf("expected title Pen, got %q", product.Title)
	}
	if !product.Price.Equal(price) {
		t.Fatalf("expected price %s, got %s", price, product.Price)
	}

	response := NewProductResponse(product)
	if response.Title != req.Title || !response.Price.Equal(*req.Price) {
		t.Fatalf("round trip lost data: %+v", response)
	}
}

func TestNewProductResponse(t *testing.T) {
	product := &domain.Product{ID: 5, Title: "Pencil", Price: decimal.RequireFromString("0.99")}

	data, err := json.Marshal(NewProductResponse(product))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	expected := `{"id":5,"title":"Pencil","price":0.99}`
	if string(data) != expected {
		t.Fatalf("expected %s, got %s", expected, data)
	}
}

func TestProductRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		price string
	}{
		{"number", `{"title":"Pen","price":1.50}`, "1.5"},
		{"string", `{"title":"Pen","price":"1.50"}`, "1.5"},
		{"integer", `{"title":"Pen","price":3}`, "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req ProductRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if req.Price == nil {
				t.Fatal("expected price to be set")
			}
			if !req.Price.Equal(decimal.RequireFromString(tt.price)) {
				t.Fatalf("expected price %s, got %s", tt.price, req.Price)
			}
		})
	}
}

func TestNewProductResponses(t *testing.T) {
	products := []*domain.Product{
		{ID: 1, Title: "A", Price: decimal.NewFromInt(1)},
		{ID: 2, Title: "B", Price: decimal.NewFromInt(2)},
	}
	responses := NewProductResponses(products)
	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(responses))
	}
	if responses[1].ID != 2 {
		t.Fatalf("expected id 2, got %d", responses[1].ID)
	}

	if empty := NewProductResponses(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", empty)
	}
}
