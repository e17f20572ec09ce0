package controller

import (
	"github.com/andikahilmy/marketplace-service/internal/dto"
	"github.com/andikahilmy/marketplace-service/internal/service"
	pkgdto "github.com/andikahilmy/marketplace-service/pkg/dto"
	"github.com/andikahilmy/marketplace-service/pkg/errs"
	"github.com/andikahilmy/marketplace-service/pkg/response"
	"github.com/andikahilmy/marketplace-service/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService, isLoggedIn echo.MiddlewareFunc) {
	c := ProductController{
		service: service,
	}
	e.GET("/products", c.GetProducts)
	e.GET("/products/:id", c.GetProductByID)
	e.GET("/products/seller/:sellerId", c.GetProductsBySeller)
	e.POST("/products", c.AddProduct, isLoggedIn)
	e.PUT("/products/:id", c.UpdateProduct, isLoggedIn)
	e.DELETE("/products/:id", c.DeleteProduct, isLoggedIn)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	responsePayload, err := c.service.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "successfully retrieved products record", responsePayload)
}

func (c *ProductController) GetProductByID(e echo.Context) error {
	id := e.Param("id")

	responsePayload, err := c.service.GetProductByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", responsePayload)
}

func (c *ProductController) GetProductsBySeller(e echo.Context) error {
	sellerID := e.Param("sellerId")

	responsePayload, err := c.service.GetProductsBySeller(e.Request().Context(), sellerID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", responsePayload)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	_, sellerName, sellerID := utils.ExtractTokenUser(e)

	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrValidation, response.CollectValidationErrors(err))
	}

	payload.SellerID = sellerID
	payload.SellerName = sellerName

	responsePayload, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", responsePayload)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	_, _, sellerID := utils.ExtractTokenUser(e)
	id := e.Param("id")

	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrValidation, response.CollectValidationErrors(err))
	}

	payload.ID = id
	payload.SellerID = sellerID

	responsePayload, err := c.service.UpdateProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", responsePayload)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	_, _, sellerID := utils.ExtractTokenUser(e)
	id := e.Param("id")

	err := c.service.DeleteProduct(e.Request().Context(), id, sellerID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}
