package service

import (
	"context"
	"errors"
	"time"

	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/logger"
	"github.com/rafaelleal24/catalog/internal/core/port"
	"github.com/rafaelleal24/catalog/internal/core/serviceerrors"
	"github.com/shopspring/decimal"
)

type ProductService struct {
	productRepository port.ProductPort
	txManager         port.TransactionManager
	events            port.EventRecorder
	now               func() time.Time
}

func NewProductService(productRepository port.ProductPort, txManager port.TransactionManager, events port.EventRecorder) *ProductService {
	return &ProductService{
		productRepository: productRepository,
		txManager:         txManager,
		events:            events,
		now:               time.Now,
	}
}

// Save creates the product when it has no ID, otherwise writes it under its ID,
// creating the record if that ID is not stored yet.
func (s *ProductService) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := product.Validate(); err != nil {
		return nil, invalidRequest(err)
	}

	created := product.ID.IsZero()
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.productRepository.Save(txCtx, product); err != nil {
			return err
		}
		return s.events.Record(txCtx, domain.NewProductSavedEvent(product, created, s.now()))
	})
	if err != nil {
		logger.Error(ctx, "product: save failed", err, map[string]any{
			"product_id": product.ID,
			"title":      product.Title,
			"price":      product.Price.String(),
		})
		return nil, err
	}

	logger.Info(ctx, "Product saved", map[string]any{
		"product_id": product.ID,
		"created":    created,
	})
	return product, nil
}

func (s *ProductService) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	return s.productRepository.FindByID(ctx, id)
}

func (s *ProductService) Delete(ctx context.Context, id domain.ID) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.productRepository.DeleteByID(txCtx, id); err != nil {
			return err
		}
		return s.events.Record(txCtx, domain.NewProductDeletedEvent(id, s.now()))
	})
	if err != nil {
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			logger.Error(ctx, "product: delete failed", err, map[string]any{
				"product_id": id,
			})
		}
		return err
	}

	logger.Info(ctx, "Product deleted", map[string]any{"product_id": id})
	return nil
}

func (s *ProductService) FindAll(ctx context.Context, page domain.PageRequest) ([]*domain.Product, error) {
	return s.productRepository.FindPage(ctx, page)
}

// FindProductsByPriceBetween returns one page of products priced within [from, to].
func (s *ProductService) FindProductsByPriceBetween(ctx context.Context, page domain.PageRequest, from, to decimal.Decimal) ([]*domain.Product, error) {
	if from.GreaterThan(to) {
		return nil, serviceerrors.NewInvalidRequestError("from must be less than or equal to to")
	}
	return s.productRepository.FindPageByPriceRange(ctx, page, from, to)
}

func invalidRequest(err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return serviceerrors.NewInvalidRequestError(verr.Message)
	}
	return err
}
