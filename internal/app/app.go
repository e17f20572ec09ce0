package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/andikahilmy/marketplace-service/config"
	"github.com/andikahilmy/marketplace-service/internal/controller"
	"github.com/andikahilmy/marketplace-service/internal/infrastructure/database/file"
	"github.com/andikahilmy/marketplace-service/internal/infrastructure/tracing"
	custommiddleware "github.com/andikahilmy/marketplace-service/internal/middleware"
	"github.com/andikahilmy/marketplace-service/internal/repository"
	"github.com/andikahilmy/marketplace-service/internal/service"
	"github.com/andikahilmy/marketplace-service/pkg/response"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

type App struct {
	DB            *sqlx.DB
	FileStore     *file.Store
	KafkaProducer *kafka.Conn
	Config        *config.Config
	Server        *echo.Echo
}

type requestValidator struct {
	validator *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func (app *App) Start() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()
	e.Validator = &requestValidator{validator: validator.New()}

	if app.Config.TracingConfig.CollectorHost != "" {
		traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initialize tracing")
		} else {
			defer func() {
				if err := traceProvider.Shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("Failed to shutdown tracing")
				}
			}()

			tracer := traceProvider.Tracer("marketplace-service")
			e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
					defer span.End()

					req := c.Request()
					c.SetRequest(req.WithContext(ctx))

					return next(c)
				}
			})
		}
	}

	// Empty prefix so that metrics aggregate across services
	e.Use(echoprometheus.NewMiddleware(""))

	if app.Config.MetricsPort != "" {
		go func() {
			metrics := echo.New()
			metrics.GET("/metrics", echoprometheus.NewHandler())
			if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("Failed to start metrics server")
			}
		}()
	}

	g := e.Group("/api/v1")
	g.Use(custommiddleware.Logger)

	isLoggedIn := middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey: []byte(app.Config.JWTConfig.JWTSecret),
		ErrorHandlerWithContext: func(err error, c echo.Context) error {
			errorResponse := map[string]interface{}{
				"status":  "error",
				"message": "Invalid or expired JWT",
				"errors":  nil,
			}
			return c.JSON(http.StatusUnauthorized, errorResponse)
		},
	})

	var (
		productRepo  repository.ProductRepository
		orderRepo    repository.OrderRepository
		wishlistRepo repository.WishlistRepository
		userRepo     repository.UserRepository
	)

	if app.Config.StorageDriver == config.StorageDriverFile {
		productRepo = repository.CreateProductFileRepository(app.FileStore)
		orderRepo = repository.CreateOrderFileRepository(app.FileStore)
		wishlistRepo = repository.CreateWishlistFileRepository(app.FileStore)
		userRepo = repository.CreateUserFileRepository(app.FileStore)
	} else {
		productRepo = repository.CreateProductPostgresRepository(app.DB)
		orderRepo = repository.CreateOrderPostgresRepository(app.DB)
		wishlistRepo = repository.CreateWishlistPostgresRepository(app.DB)
		userRepo = repository.CreateUserPostgresRepository(app.DB)
	}

	productSvc := service.CreateProductService(productRepo, *app.Config, app.KafkaProducer)
	orderSvc := service.CreateOrderService(orderRepo, productRepo, *app.Config, app.KafkaProducer)
	wishlistSvc := service.CreateWishlistService(wishlistRepo, productRepo)
	userSvc := service.CreateUserService(userRepo, *app.Config)

	controller.CreateProductController(g, productSvc, isLoggedIn)
	controller.CreateOrderController(g, orderSvc, isLoggedIn)
	controller.CreateWishlistController(g, wishlistSvc, isLoggedIn)
	controller.CreateUserController(g, userSvc, isLoggedIn)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	app.Server = e

	return e.Start(fmt.Sprintf(":%s", app.Config.ServicePort))
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
