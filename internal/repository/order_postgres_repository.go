package repository

import (
	"context"
	"database/sql"

	"github.com/andikahilmy/marketplace-service/internal/domain"
	"github.com/andikahilmy/marketplace-service/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type OrderPostgresRepositoryImpl struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

func CreateOrderPostgresRepository(db *sqlx.DB) OrderRepository {
	return &OrderPostgresRepositoryImpl{db: db}
}

func (r *OrderPostgresRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo OrderRepository) error) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		log.Error().Err(err).Str("component", "HandleTrx").Msg("")
		return errs.ErrStorage
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	trxRepo := &OrderPostgresRepositoryImpl{
		db: r.db,
		tx: tx,
	}

	err = fn(ctx, trxRepo)

	return err
}

func (r *OrderPostgresRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (id int64, err error) {
	nstmt, err := r.tx.PrepareNamedContext(ctx, "INSERT INTO orders(order_number, user_id, amount, status, created_at, updated_at) VALUES (:order_number, :user_id, :amount, :status, :created_at, :updated_at) returning id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
		return 0, errs.ErrStorage
	}

	err = nstmt.GetContext(ctx, &data.ID, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Msg("")
		return 0, errs.ErrStorage
	}

	return data.ID, nil
}

func (r *OrderPostgresRepositoryImpl) AddOrderDetails(ctx context.Context, data []domain.OrderDetail) (err error) {
	_, err = r.tx.NamedExecContext(ctx, "INSERT INTO order_details(order_id, product_id, product_name, quantity, amount, created_at, updated_at) VALUES (:order_id, :product_id, :product_name, :quantity, :amount, :created_at, :updated_at)", data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddOrderDetails").Msg("")
		return errs.ErrStorage
	}

	return nil
}

func (r *OrderPostgresRepositoryImpl) GetOrdersByUser(ctx context.Context, userID string) (data []domain.Order, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM orders WHERE user_id = $1 AND deleted_at IS NULL ORDER BY id ASC", userID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetOrdersByUser").Msg("")
		return nil, errs.ErrStorage
	}

	for i := range data {
		var details []domain.OrderDetail
		err = r.db.SelectContext(ctx, &details, "SELECT * FROM order_details WHERE order_id = $1 AND deleted_at IS NULL ORDER BY id ASC", data[i].ID)
		if err != nil {
			log.Error().Err(err).Str("component", "GetOrdersByUser").Msg("")
			return nil, errs.ErrStorage
		}
		data[i].OrderDetails = details
	}

	return data, nil
}
