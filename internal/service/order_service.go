package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/andikahilmy/marketplace-service/config"
	"github.com/andikahilmy/marketplace-service/internal/domain"
	"github.com/andikahilmy/marketplace-service/internal/dto"
	"github.com/andikahilmy/marketplace-service/internal/repository"
	"github.com/andikahilmy/marketplace-service/pkg/errs"
	"github.com/andikahilmy/marketplace-service/pkg/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"gopkg.in/gomail.v2"
)

type OrderServiceImpl struct {
	repo          repository.OrderRepository
	productRepo   repository.ProductRepository
	config        config.Config
	kafkaProducer *kafka.Conn
}

func CreateOrderService(repo repository.OrderRepository, productRepo repository.ProductRepository, config config.Config, kafkaProducer *kafka.Conn) OrderService {
	return &OrderServiceImpl{repo: repo, productRepo: productRepo, config: config, kafkaProducer: kafkaProducer}
}

func (s *OrderServiceImpl) AddOrder(ctx context.Context, req dto.OrderRequest) (responsePayload dto.OrderResponse, err error) {
	if len(req.OrderItems) == 0 {
		return responsePayload, errs.ErrValidation
	}

	orderNumber, err := uuid.NewV7()
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
		return responsePayload, errs.ErrInternalServer
	}

	timestamp := time.Now().UnixMilli()
	order := domain.Order{
		OrderNumber: orderNumber.String(),
		UserID:      req.UserID,
		Status:      domain.OrderStatusPending,
		CreatedAt:   timestamp,
		UpdatedAt:   timestamp,
	}

	var details []domain.OrderDetail
	for _, item := range req.OrderItems {
		if item.Quantity <= 0 {
			return responsePayload, errs.ErrValidation
		}

		product, prodErr := s.productRepo.GetProductByID(ctx, item.ProductID)
		if prodErr != nil {
			return responsePayload, prodErr
		}

		details = append(details, domain.OrderDetail{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			Amount:      product.Price,
			CreatedAt:   timestamp,
			UpdatedAt:   timestamp,
		})

		order.Amount += product.Price * float64(item.Quantity)
	}

	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.OrderRepository) error {
		orderID, trxErr := repo.AddOrder(ctx, order)
		if trxErr != nil {
			return trxErr
		}

		order.ID = orderID
		for i := range details {
			details[i].OrderID = orderID
		}

		return repo.AddOrderDetails(ctx, details)
	})
	if err != nil {
		return responsePayload, err
	}

	order.OrderDetails = details
	responsePayload = mapOrderResponse(order)

	s.publishEvent("order_created", responsePayload)
	s.sendOrderConfirmation(order)

	return responsePayload, nil
}

func (s *OrderServiceImpl) GetOrdersByUser(ctx context.Context, userID string) (responsePayload []dto.OrderResponse, err error) {
	orders, err := s.repo.GetOrdersByUser(ctx, userID)
	if err != nil {
		return
	}

	responsePayload = make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		responsePayload = append(responsePayload, mapOrderResponse(order))
	}

	return responsePayload, nil
}

// sendOrderConfirmation is best-effort; checkout never fails on email
// problems. The order's user id is the account email.
func (s *OrderServiceImpl) sendOrderConfirmation(order domain.Order) {
	if s.config.SMTPConfig.Host == "" {
		return
	}

	message := gomail.NewMessage()
	message.SetHeader("From", s.config.SMTPConfig.Sender)
	message.SetHeader("To", order.UserID)
	message.SetHeader("Subject", fmt.Sprintf("Order %s confirmed", order.OrderNumber))
	message.SetBody("text/plain", fmt.Sprintf("Your order %s with a total of %.2f has been received.", order.OrderNumber, order.Amount))

	err := utils.SendEmail(message, s.config.SMTPConfig.Sender, s.config.SMTPConfig.Password, s.config.SMTPConfig.Host, s.config.SMTPConfig.Port)
	if err != nil {
		log.Error().Err(err).Str("component", "sendOrderConfirmation").Msg("")
	}
}

func (s *OrderServiceImpl) publishEvent(eventType string, data interface{}) {
	if s.kafkaProducer == nil {
		return
	}

	jsonMsg, err := json.Marshal(dto.KafkaMessage{EventType: eventType, Data: data})
	if err != nil {
		log.Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		if err = s.writeKafkaMessage(jsonMsg); err == nil {
			return
		}
		log.Error().Err(err).Str("component", "publishEvent").Msg("")
		time.Sleep(time.Second * time.Duration(i+1))
	}
}

func (s *OrderServiceImpl) writeKafkaMessage(msg []byte) error {
	_, err := s.kafkaProducer.WriteMessages(
		kafka.Message{
			Value: msg,
		},
	)
	return err
}

func mapOrderResponse(order domain.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.OrderDetails))
	for _, detail := range order.OrderDetails {
		items = append(items, dto.OrderItemResponse{
			ProductID:   detail.ProductID,
			ProductName: detail.ProductName,
			Quantity:    detail.Quantity,
			Amount:      detail.Amount,
		})
	}

	return dto.OrderResponse{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		Amount:      order.Amount,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
		OrderItems:  items,
	}
}
