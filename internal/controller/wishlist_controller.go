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

type WishlistController struct {
	service service.WishlistService
}

func CreateWishlistController(e *echo.Group, service service.WishlistService, isLoggedIn echo.MiddlewareFunc) {
	c := WishlistController{
		service: service,
	}
	e.POST("/wishlist", c.HandleAction, isLoggedIn)
	e.GET("/wishlist", c.GetWishlist, isLoggedIn)
}

func (c *WishlistController) HandleAction(e echo.Context) error {
	_, _, userID := utils.ExtractTokenUser(e)

	payload := dto.WishlistRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "HandleAction").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrValidation, response.CollectValidationErrors(err))
	}

	payload.UserID = userID

	responsePayload, err := c.service.HandleAction(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", responsePayload)
}

func (c *WishlistController) GetWishlist(e echo.Context) error {
	_, _, userID := utils.ExtractTokenUser(e)

	responsePayload, err := c.service.GetWishlist(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", responsePayload)
}
