package domain

import (
	"fmt"
	"strings"
)

type SortField string

const (
	SortByTitle SortField = "title"
	SortByPrice SortField = "price"
)

func (f SortField) IsValid() bool {
	return f == SortByTitle || f == SortByPrice
}

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

type Order struct {
	Field     SortField
	Direction Direction
}

func (o Order) Descending() bool {
	return o.Direction == Desc
}

// Sort is an ordered list of sort keys, most significant first.
type Sort []Order

var DefaultSort = Sort{{Field: SortByTitle, Direction: Asc}}

// ParseSort turns a sortBy token into a Sort. Accepted forms are "price",
// "price,desc", "price:DESC" and several orders joined with ';'
// ("price:DESC;title"). An empty token yields DefaultSort.
func ParseSort(sortBy string) (Sort, error) {
	sortBy = strings.TrimSpace(sortBy)
	if sortBy == "" {
		return DefaultSort, nil
	}

	var sort Sort
	for _, part := range strings.Split(sortBy, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		order, err := parseOrder(part)
		if err != nil {
			return nil, err
		}
		// first occurrence of a field wins
		if !sort.has(order.Field) {
			sort = append(sort, order)
		}
	}
	if len(sort) == 0 {
		return DefaultSort, nil
	}
	return sort, nil
}

func parseOrder(token string) (Order, error) {
	field, direction, hasDirection := strings.Cut(token, ":")
	if !hasDirection {
		field, direction, hasDirection = strings.Cut(token, ",")
	}

	order := Order{
		Field:     SortField(strings.ToLower(strings.TrimSpace(field))),
		Direction: Asc,
	}
	if !order.Field.IsValid() {
		return Order{}, NewValidationError("sortBy", fmt.Sprintf("unsupported sort field %q", strings.TrimSpace(field)))
	}

	if hasDirection {
		switch Direction(strings.ToUpper(strings.TrimSpace(direction))) {
		case Asc:
		case Desc:
			order.Direction = Desc
		default:
			return Order{}, NewValidationError("sortBy", fmt.Sprintf("unsupported sort direction %q", strings.TrimSpace(direction)))
		}
	}
	return order, nil
}

func (s Sort) has(field SortField) bool {
	for _, o := range s {
		if o.Field == field {
			return true
		}
	}
	return false
}

func (s Sort) String() string {
	parts := make([]string, len(s))
	for i, o := range s {
		parts[i] = fmt.Sprintf("%s:%s", o.Field, o.Direction)
	}
	return strings.Join(parts, ";")
}

// Compare orders a before b (negative), after b (positive) or equal (zero).
// Ties on every sort key fall back to ascending ID.
func (s Sort) Compare(a, b *Product) int {
	for _, o := range s {
		var c int
		switch o.Field {
		case SortByTitle:
			c = strings.Compare(a.Title, b.Title)
		case SortByPrice:
			c = a.Price.Cmp(b.Price)
		}
		if o.Descending() {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	default:
		return 0
	}
}
