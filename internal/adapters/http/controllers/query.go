package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListQuery holds the paging parameters shared by the listing endpoints.
type ListQuery struct {
	Count  int    `form:"count,default=20"`
	Page   int    `form:"page,default=0"`
	SortBy string `form:"sortBy,default=title"`
}

func (q ListQuery) ToPageRequest() (domain.PageRequest, error) {
	sort, err := domain.ParseSort(q.SortBy)
	if err != nil {
		return domain.PageRequest{}, err
	}
	return domain.NewPageRequest(q.Page, q.Count, sort)
}

type PriceRangeQuery struct {
	ListQuery
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

// Bounds parses the inclusive price bounds. Ordering of the bounds is checked by the service.
func (q PriceRangeQuery) Bounds() (decimal.Decimal, decimal.Decimal, error) {
	from, err := decimal.NewFromString(q.From)
	if err != nil {
		return decimal.Zero, decimal.Zero, domain.NewValidationError("from", "from must be a decimal number")
	}
	to, err := decimal.NewFromString(q.To)
	if err != nil {
		return decimal.Zero, decimal.Zero, domain.NewValidationError("to", "to must be a decimal number")
	}
	return from, to, nil
}

func ParseID(c *gin.Context) (domain.ID, error) {
	return domain.ParseID(c.Param("id"))
}
