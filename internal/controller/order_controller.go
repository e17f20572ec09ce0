package controller

import (
	"github.com/andikahilmy/marketplace-service/internal/dto"
	"github.com/andikahilmy/marketplace-service/internal/service"
	"github.com/andikahilmy/marketplace-service/pkg/errs"
	"github.com/andikahilmy/marketplace-service/pkg/response"
	"github.com/andikahilmy/marketplace-service/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type OrderController struct {
	service service.OrderService
}

func CreateOrderController(e *echo.Group, service service.OrderService, isLoggedIn echo.MiddlewareFunc) {
	c := OrderController{
		service: service,
	}
	e.POST("/orders", c.AddOrder, isLoggedIn)
	e.GET("/orders", c.GetOrders, isLoggedIn)
}

func (c *OrderController) AddOrder(e echo.Context) error {
	_, _, userID := utils.ExtractTokenUser(e)

	payload := dto.OrderRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrValidation, response.CollectValidationErrors(err))
	}

	payload.UserID = userID

	responsePayload, err := c.service.AddOrder(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", responsePayload)
}

func (c *OrderController) GetOrders(e echo.Context) error {
	_, _, userID := utils.ExtractTokenUser(e)

	responsePayload, err := c.service.GetOrdersByUser(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", responsePayload)
}
