package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/andikahilmy/marketplace-service/internal/domain"
	"github.com/andikahilmy/marketplace-service/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type ProductPostgresRepositoryImpl struct {
	db *sqlx.DB
}

func CreateProductPostgresRepository(db *sqlx.DB) ProductRepository {
	return &ProductPostgresRepositoryImpl{db: db}
}

func (r *ProductPostgresRepositoryImpl) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM products WHERE deleted_at IS NULL ORDER BY created_at ASC, id ASC")
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, errs.ErrStorage
	}

	return data, nil
}

func (r *ProductPostgresRepositoryImpl) GetProductByID(ctx context.Context, id string) (data domain.Product, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM products WHERE id = $1 AND deleted_at IS NULL", id)
	err = row.StructScan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return data, errs.ErrNotFound
		}
		log.Error().Err(err).Str("component", "GetProductByID").Msg("")
		return data, errs.ErrStorage
	}

	return
}

func (r *ProductPostgresRepositoryImpl) GetProductsBySeller(ctx context.Context, sellerID string) (data []domain.Product, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM products WHERE seller_id = $1 AND deleted_at IS NULL ORDER BY created_at ASC, id ASC", sellerID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductsBySeller").Msg("")
		return nil, errs.ErrStorage
	}

	return data, nil
}

func (r *ProductPostgresRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (err error) {
	_, err = r.db.NamedExecContext(ctx, "INSERT INTO products(id, name, description, price, category, image_url, rating, stock, seller_id, seller_name, created_at, updated_at) VALUES (:id, :name, :description, :price, :category, :image_url, :rating, :stock, :seller_id, :seller_name, :created_at, :updated_at)", data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return errs.ErrStorage
	}

	return nil
}

func (r *ProductPostgresRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	result, err := r.db.NamedExecContext(ctx, "UPDATE products SET name=:name, description=:description, price=:price, category=:category, image_url=:image_url, stock=:stock, updated_at=:updated_at WHERE id=:id AND deleted_at IS NULL", data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return errs.ErrStorage
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return errs.ErrStorage
	}

	if affected == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *ProductPostgresRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	result, err := r.db.ExecContext(ctx, "UPDATE products SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL", time.Now().UnixMilli(), id)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return errs.ErrStorage
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return errs.ErrStorage
	}

	if affected == 0 {
		return errs.ErrNotFound
	}

	return nil
}
