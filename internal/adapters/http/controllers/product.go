package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rafaelleal24/catalog/internal/adapters/http/handlers"
	"github.com/rafaelleal24/catalog/internal/core/dto"
	"github.com/rafaelleal24/catalog/internal/core/service"
	"github.com/rafaelleal24/catalog/internal/core/serviceerrors"
)

type ProductController struct {
	productService *service.ProductService
}

func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// CreateProduct godoc
// @Summary     Create a product
// @Description Creates a new product and returns it with its assigned ID
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body     dto.ProductRequest true "Product data"
// @Success     201     {object} dto.ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     429     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /products [post]
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var request dto.ProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	product, err := pc.productService.Save(c.Request.Context(), request.ToModel())
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewProductResponse(product))
}

// GetProductByID godoc
// @Summary     Get product by ID
// @Description Returns a single product by its ID
// @Tags        products
// @Produce     json
// @Param       id  path     int true "Product ID"
// @Success     200 {object} dto.ProductResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /products/{id} [get]
func (pc *ProductController) GetProductByID(c *gin.Context) {
	id, err := ParseID(c)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	product, err := pc.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(product))
}

// UpdateProduct godoc
// @Summary     Update a product
// @Description Replaces the product stored under ID, creating it if it does not exist
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id      path     int                true "Product ID"
// @Param       request body     dto.ProductRequest true "Product data"
// @Success     200     {object} dto.ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     429     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /products/{id} [put]
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, err := ParseID(c)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	var request dto.ProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	product := request.ToModel()
	product.ID = id
	saved, err := pc.productService.Save(c.Request.Context(), product)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponse(saved))
}

// DeleteProduct godoc
// @Summary     Delete a product
// @Description Deletes the product stored under ID
// @Tags        products
// @Param       id  path int true "Product ID"
// @Success     204
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     429 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /products/{id} [delete]
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, err := ParseID(c)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	if err := pc.productService.Delete(c.Request.Context(), id); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetAll godoc
// @Summary     List products
// @Description Returns one page of products in the requested order
// @Tags        products
// @Produce     json
// @Param       count  query    int    false "Page size"       default(20)
// @Param       page   query    int    false "Zero-based page" default(0)
// @Param       sortBy query    string false "Sort order, e.g. price:DESC;title" default(title)
// @Success     200    {array}  dto.ProductResponse
// @Failure     400    {object} handlers.ErrorResponse
// @Failure     500    {object} handlers.ErrorResponse
// @Router      /products [get]
func (pc *ProductController) GetAll(c *gin.Context) {
	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	page, err := query.ToPageRequest()
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	products, err := pc.productService.FindAll(c.Request.Context(), page)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponses(products))
}

// GetByPrice godoc
// @Summary     List products in a price range
// @Description Returns one page of products with from <= price <= to
// @Tags        products
// @Produce     json
// @Param       from   query    number true  "Lowest price, inclusive"
// @Param       to     query    number true  "Highest price, inclusive"
// @Param       count  query    int    false "Page size"       default(20)
// @Param       page   query    int    false "Zero-based page" default(0)
// @Param       sortBy query    string false "Sort order, e.g. price:DESC;title" default(title)
// @Success     200    {array}  dto.ProductResponse
// @Failure     400    {object} handlers.ErrorResponse
// @Failure     500    {object} handlers.ErrorResponse
// @Router      /products/by-price [get]
func (pc *ProductController) GetByPrice(c *gin.Context) {
	var query PriceRangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	from, to, err := query.Bounds()
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	page, err := query.ToPageRequest()
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	products, err := pc.productService.FindProductsByPriceBetween(c.Request.Context(), page, from, to)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponses(products))
}
