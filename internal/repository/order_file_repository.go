package repository

import (
	"context"

	"github.com/andikahilmy/marketplace-service/internal/domain"
	"github.com/andikahilmy/marketplace-service/internal/infrastructure/database/file"
	"github.com/andikahilmy/marketplace-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

type OrderFileRepositoryImpl struct {
	store *file.Store

	// doc is set while inside HandleTrx so that all mutations land in
	// the same document write.
	doc *file.Document
}

func CreateOrderFileRepository(store *file.Store) OrderRepository {
	return &OrderFileRepositoryImpl{store: store}
}

func (r *OrderFileRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo OrderRepository) error) error {
	err := r.store.Update(func(doc *file.Document) error {
		trxRepo := &OrderFileRepositoryImpl{store: r.store, doc: doc}
		return fn(ctx, trxRepo)
	})
	if err != nil {
		return err
	}

	return nil
}

func (r *OrderFileRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (id int64, err error) {
	if r.doc == nil {
		log.Error().Str("component", "AddOrder").Msg("called outside of a transaction")
		return 0, errs.ErrStorage
	}

	data.ID = int64(len(r.doc.Orders)) + 1
	r.doc.Orders = append(r.doc.Orders, data)

	return data.ID, nil
}

func (r *OrderFileRepositoryImpl) AddOrderDetails(ctx context.Context, data []domain.OrderDetail) (err error) {
	if r.doc == nil {
		log.Error().Str("component", "AddOrderDetails").Msg("called outside of a transaction")
		return errs.ErrStorage
	}

	for i := range r.doc.Orders {
		if len(data) > 0 && r.doc.Orders[i].ID == data[0].OrderID {
			r.doc.Orders[i].OrderDetails = append(r.doc.Orders[i].OrderDetails, data...)
			return nil
		}
	}

	return errs.ErrNotFound
}

func (r *OrderFileRepositoryImpl) GetOrdersByUser(ctx context.Context, userID string) (data []domain.Order, err error) {
	err = r.store.View(func(doc *file.Document) error {
		for _, order := range doc.Orders {
			if order.UserID == userID {
				data = append(data, order)
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrdersByUser").Msg("")
		return nil, errs.ErrStorage
	}

	return data, nil
}
