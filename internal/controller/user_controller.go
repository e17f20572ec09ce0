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

type UserController struct {
	service service.UserService
}

func CreateUserController(e *echo.Group, service service.UserService, isLoggedIn echo.MiddlewareFunc) {
	uc := UserController{
		service: service,
	}
	e.POST("/users/register", uc.Register)
	e.POST("/users/login", uc.Login)
	e.POST("/users/oauth", uc.OAuthLogin)
	e.PUT("/users/profile", uc.UpdateProfile, isLoggedIn)
}

func (c *UserController) Register(e echo.Context) error {
	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Register").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrValidation, response.CollectValidationErrors(err))
	}

	err = c.service.Register(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrValidation, response.CollectValidationErrors(err))
	}

	respPayload, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *UserController) OAuthLogin(e echo.Context) error {
	payload := dto.OAuthRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "OAuthLogin").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrValidation, response.CollectValidationErrors(err))
	}

	respPayload, err := c.service.OAuthLogin(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", respPayload)
}

func (c *UserController) UpdateProfile(e echo.Context) error {
	_, _, email := utils.ExtractTokenUser(e)

	payload := dto.ProfileUpdateRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProfile").Msg("")
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrValidation, response.CollectValidationErrors(err))
	}

	payload.Email = email

	err = c.service.UpdateProfile(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}
