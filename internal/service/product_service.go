package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/andikahilmy/marketplace-service/config"
	"github.com/andikahilmy/marketplace-service/internal/domain"
	"github.com/andikahilmy/marketplace-service/internal/dto"
	"github.com/andikahilmy/marketplace-service/internal/repository"
	pkgdto "github.com/andikahilmy/marketplace-service/pkg/dto"
	"github.com/andikahilmy/marketplace-service/pkg/errs"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

type ProductServiceImpl struct {
	repo          repository.ProductRepository
	config        config.Config
	kafkaProducer *kafka.Conn
}

func CreateProductService(repo repository.ProductRepository, config config.Config, kafkaProducer *kafka.Conn) ProductService {
	return &ProductServiceImpl{repo: repo, config: config, kafkaProducer: kafkaProducer}
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (responsePayload pkgdto.PaginationResponse, err error) {
	products, err := s.repo.GetProducts(ctx)
	if err != nil {
		return
	}

	page, meta := queryProducts(products, filter)

	records := make([]dto.ProductResponse, 0, len(page))
	for _, product := range page {
		records = append(records, mapProductResponse(product))
	}

	responsePayload.Metadata = meta
	responsePayload.Records = records

	return responsePayload, nil
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (responsePayload dto.ProductResponse, err error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	return mapProductResponse(product), nil
}

func (s *ProductServiceImpl) GetProductsBySeller(ctx context.Context, sellerID string) (responsePayload []dto.ProductResponse, err error) {
	products, err := s.repo.GetProductsBySeller(ctx, sellerID)
	if err != nil {
		return
	}

	responsePayload = make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		responsePayload = append(responsePayload, mapProductResponse(product))
	}

	return responsePayload, nil
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest) (responsePayload dto.ProductResponse, err error) {
	if data.Name == "" || data.Price < 0 || data.Stock < 0 {
		return responsePayload, errs.ErrValidation
	}

	timestamp := time.Now().UnixMilli()
	product := domain.Product{
		ID:          ulid.Make().String(),
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Category:    data.Category,
		ImageURL:    data.ImageURL,
		Rating:      0,
		Stock:       data.Stock,
		SellerID:    data.SellerID,
		SellerName:  data.SellerName,
		CreatedAt:   timestamp,
		UpdatedAt:   timestamp,
	}

	if err = s.repo.AddProduct(ctx, product); err != nil {
		return
	}

	responsePayload = mapProductResponse(product)
	s.publishEvent("product_created", responsePayload)

	return responsePayload, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, data dto.ProductRequest) (responsePayload dto.ProductResponse, err error) {
	if data.Name == "" || data.Price < 0 || data.Stock < 0 {
		return responsePayload, errs.ErrValidation
	}

	existing, err := s.repo.GetProductByID(ctx, data.ID)
	if err != nil {
		return
	}

	if existing.SellerID != data.SellerID {
		return responsePayload, errs.ErrUnauthorized
	}

	updated := existing
	updated.Name = data.Name
	updated.Description = data.Description
	updated.Price = data.Price
	updated.Category = data.Category
	updated.ImageURL = data.ImageURL
	updated.Stock = data.Stock
	updated.UpdatedAt = time.Now().UnixMilli()

	if err = s.repo.UpdateProduct(ctx, updated); err != nil {
		return
	}

	responsePayload = mapProductResponse(updated)
	s.publishEvent("product_updated", responsePayload)

	return responsePayload, nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string, actingSellerID string) (err error) {
	existing, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	if existing.SellerID != actingSellerID {
		return errs.ErrUnauthorized
	}

	if err = s.repo.DeleteProduct(ctx, id); err != nil {
		return
	}

	s.publishEvent("product_deleted", dto.ProductResponse{ID: id, SellerID: actingSellerID})

	return nil
}

// publishEvent is best-effort with a bounded retry; deployments without
// a broker configured run with a nil producer.
func (s *ProductServiceImpl) publishEvent(eventType string, data interface{}) {
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

func (s *ProductServiceImpl) writeKafkaMessage(msg []byte) error {
	_, err := s.kafkaProducer.WriteMessages(
		kafka.Message{
			Value: msg,
		},
	)
	return err
}

func mapProductResponse(product domain.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		ImageURL:    product.ImageURL,
		Rating:      product.Rating,
		Stock:       product.Stock,
		SellerID:    product.SellerID,
		SellerName:  product.SellerName,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
