package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/port"
	"github.com/rafaelleal24/catalog/internal/core/serviceerrors"
	"github.com/shopspring/decimal"
)

const (
	insertProductSQL = `INSERT INTO products (title, price) VALUES ($1, $2::numeric) RETURNING id`
	upsertProductSQL = `
		INSERT INTO products (id, title, price) VALUES ($1, $2, $3::numeric)
		ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, price = EXCLUDED.price`
	// keeps BIGSERIAL allocation ahead of explicitly written ids
	raiseSequenceSQL   = `SELECT setval('products_id_seq', GREATEST($1::bigint, (SELECT last_value FROM products_id_seq)))`
	selectProductSQL   = `SELECT id, title, price::text FROM products WHERE id = $1`
	deleteProductSQL   = `DELETE FROM products WHERE id = $1`
	selectProductsSQL  = `SELECT id, title, price::text FROM products`
	priceBetweenClause = ` WHERE price BETWEEN $1::numeric AND $2::numeric`
)

// Columns a page may be ordered by. Title uses byte order so every store sorts alike.
var orderColumns = map[domain.SortField]string{
	domain.SortByTitle: `title COLLATE "C"`,
	domain.SortByPrice: "price",
}

type ProductRepository struct {
	pool DBPool
}

func NewProductRepository(pool DBPool) port.ProductPort {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) error {
	db := conn(ctx, r.pool)

	if product.ID.IsZero() {
		var id int64
		if err := db.QueryRow(ctx, insertProductSQL, product.Title, product.Price.String()).Scan(&id); err != nil {
			return parseError(err, "product")
		}
		product.ID = domain.ID(id)
		return nil
	}

	if _, err := db.Exec(ctx, upsertProductSQL, int64(product.ID), product.Title, product.Price.String()); err != nil {
		return parseError(err, "product")
	}
	if _, err := db.Exec(ctx, raiseSequenceSQL, int64(product.ID)); err != nil {
		return parseError(err, "product")
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	row := conn(ctx, r.pool).QueryRow(ctx, selectProductSQL, int64(id))
	product, err := scanProduct(row)
	if err != nil {
		return nil, parseError(err, "product")
	}
	return product, nil
}

func (r *ProductRepository) DeleteByID(ctx context.Context, id domain.ID) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, deleteProductSQL, int64(id))
	if err != nil {
		return parseError(err, "product")
	}
	if tag.RowsAffected() == 0 {
		return serviceerrors.NewNotFoundError("product not found")
	}
	return nil
}

func (r *ProductRepository) FindPage(ctx context.Context, page domain.PageRequest) ([]*domain.Product, error) {
	query := selectProductsSQL + orderBy(page.Sort) + " LIMIT $1 OFFSET $2"
	return r.query(ctx, query, page.Size, page.Offset())
}

func (r *ProductRepository) FindPageByPriceRange(ctx context.Context, page domain.PageRequest, from, to decimal.Decimal) ([]*domain.Product, error) {
	query := selectProductsSQL + priceBetweenClause + orderBy(page.Sort) + " LIMIT $3 OFFSET $4"
	return r.query(ctx, query, from.String(), to.String(), page.Size, page.Offset())
}

func (r *ProductRepository) query(ctx context.Context, query string, args ...any) ([]*domain.Product, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, parseError(err, "product")
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, parseError(err, "product")
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, parseError(err, "product")
	}
	return products, nil
}

func orderBy(sort domain.Sort) string {
	if len(sort) == 0 {
		sort = domain.DefaultSort
	}
	parts := make([]string, 0, len(sort)+1)
	for _, o := range sort {
		column, ok := orderColumns[o.Field]
		if !ok {
			continue
		}
		direction := "ASC"
		if o.Descending() {
			direction = "DESC"
		}
		parts = append(parts, column+" "+direction)
	}
	parts = append(parts, "id ASC")
	return " ORDER BY " + strings.Join(parts, ", ")
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		id    int64
		title string
		price string
	)
	if err := row.Scan(&id, &title, &price); err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("product %d has invalid price %q: %w", id, price, err)
	}
	return &domain.Product{ID: domain.ID(id), Title: title, Price: amount}, nil
}
