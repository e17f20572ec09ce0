package repository

import (
	"context"
	"database/sql"

	"github.com/andikahilmy/marketplace-service/internal/domain"
	"github.com/andikahilmy/marketplace-service/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type WishlistPostgresRepositoryImpl struct {
	db *sqlx.DB
}

func CreateWishlistPostgresRepository(db *sqlx.DB) WishlistRepository {
	return &WishlistPostgresRepositoryImpl{db: db}
}

func (r *WishlistPostgresRepositoryImpl) GetWishlistItems(ctx context.Context, userID string) (data []domain.WishlistItem, err error) {
	err = r.db.SelectContext(ctx, &data, "SELECT * FROM wishlist_items WHERE user_id = $1 ORDER BY id ASC", userID)
	if err != nil {
		log.Error().Err(err).Str("component", "GetWishlistItems").Msg("")
		return nil, errs.ErrStorage
	}

	return data, nil
}

func (r *WishlistPostgresRepositoryImpl) IsWishlisted(ctx context.Context, userID string, productID string) (found bool, err error) {
	var item domain.WishlistItem
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM wishlist_items WHERE user_id = $1 AND product_id = $2", userID, productID)
	err = row.StructScan(&item)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		log.Error().Err(err).Str("component", "IsWishlisted").Msg("")
		return false, errs.ErrStorage
	}

	return true, nil
}

func (r *WishlistPostgresRepositoryImpl) AddWishlistItem(ctx context.Context, data domain.WishlistItem) (err error) {
	_, err = r.db.NamedExecContext(ctx, "INSERT INTO wishlist_items(user_id, product_id, created_at) VALUES (:user_id, :product_id, :created_at) ON CONFLICT (user_id, product_id) DO NOTHING", data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddWishlistItem").Msg("")
		return errs.ErrStorage
	}

	return nil
}

func (r *WishlistPostgresRepositoryImpl) DeleteWishlistItem(ctx context.Context, userID string, productID string) (err error) {
	_, err = r.db.ExecContext(ctx, "DELETE FROM wishlist_items WHERE user_id = $1 AND product_id = $2", userID, productID)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteWishlistItem").Msg("")
		return errs.ErrStorage
	}

	return nil
}
