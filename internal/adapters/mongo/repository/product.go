package repository

import (
	"context"

	"github.com/rafaelleal24/catalog/internal/adapters/mongo/document"
	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/port"
	"github.com/rafaelleal24/catalog/internal/core/serviceerrors"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository struct {
	*BaseRepository[document.ProductDocument]
	sequence *Sequence
}

func NewProductRepository(db *mongo.Database) port.ProductPort {
	return &ProductRepository{
		BaseRepository: NewBaseRepository[document.ProductDocument](db, "products", "product"),
		sequence:       NewSequence(db, "products"),
	}
}

func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) error {
	if product.ID.IsZero() {
		id, err := r.sequence.Next(ctx)
		if err != nil {
			return err
		}
		doc, err := toDocument(product, id)
		if err != nil {
			return err
		}
		if err := r.Create(ctx, doc); err != nil {
			return err
		}
		product.ID = domain.ID(id)
		return nil
	}

	if err := r.sequence.Raise(ctx, int64(product.ID)); err != nil {
		return err
	}
	doc, err := toDocument(product, int64(product.ID))
	if err != nil {
		return err
	}
	return r.Replace(ctx, doc)
}

func (r *ProductRepository) FindByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	doc, err := r.BaseRepository.FindByID(ctx, int64(id))
	if err != nil {
		return nil, err
	}

	return toDomain(doc)
}

func (r *ProductRepository) DeleteByID(ctx context.Context, id domain.ID) error {
	return r.BaseRepository.DeleteByID(ctx, int64(id))
}

func (r *ProductRepository) FindPage(ctx context.Context, page domain.PageRequest) ([]*domain.Product, error) {
	return r.findPage(ctx, bson.M{}, page)
}

func (r *ProductRepository) FindPageByPriceRange(ctx context.Context, page domain.PageRequest, from, to decimal.Decimal) ([]*domain.Product, error) {
	low, err := primitive.ParseDecimal128(from.String())
	if err != nil {
		return nil, serviceerrors.NewInvalidRequestError("from is out of range")
	}
	high, err := primitive.ParseDecimal128(to.String())
	if err != nil {
		return nil, serviceerrors.NewInvalidRequestError("to is out of range")
	}

	return r.findPage(ctx, bson.M{"price": bson.M{"$gte": low, "$lte": high}}, page)
}

func (r *ProductRepository) findPage(ctx context.Context, filter bson.M, page domain.PageRequest) ([]*domain.Product, error) {
	opts := options.Find().
		SetSort(sortDocument(page.Sort)).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Size))

	docs, err := r.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, len(docs))
	for i := range docs {
		if products[i], err = toDomain(&docs[i]); err != nil {
			return nil, err
		}
	}

	return products, nil
}

func sortDocument(sort domain.Sort) bson.D {
	d := make(bson.D, 0, len(sort)+1)
	for _, o := range sort {
		direction := 1
		if o.Descending() {
			direction = -1
		}
		d = append(d, bson.E{Key: string(o.Field), Value: direction})
	}
	return append(d, bson.E{Key: "_id", Value: 1})
}

func toDocument(product *domain.Product, id int64) (*document.ProductDocument, error) {
	doc, err := document.ToProductDocument(product)
	if err != nil {
		return nil, serviceerrors.NewInvalidRequestError(err.Error())
	}
	doc.ID = id
	return doc, nil
}

func toDomain(doc *document.ProductDocument) (*domain.Product, error) {
	product, err := doc.ToDomain()
	if err != nil {
		return nil, serviceerrors.NewUpstreamError("stored product is corrupt", err)
	}
	return product, nil
}
