package repository

import (
	"context"

	"github.com/andikahilmy/marketplace-service/internal/domain"
	"github.com/andikahilmy/marketplace-service/internal/infrastructure/database/file"
	"github.com/andikahilmy/marketplace-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

type WishlistFileRepositoryImpl struct {
	store *file.Store
}

func CreateWishlistFileRepository(store *file.Store) WishlistRepository {
	return &WishlistFileRepositoryImpl{store: store}
}

func (r *WishlistFileRepositoryImpl) GetWishlistItems(ctx context.Context, userID string) (data []domain.WishlistItem, err error) {
	err = r.store.View(func(doc *file.Document) error {
		for _, item := range doc.WishlistItems {
			if item.UserID == userID {
				data = append(data, item)
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("component", "GetWishlistItems").Msg("")
		return nil, errs.ErrStorage
	}

	return data, nil
}

func (r *WishlistFileRepositoryImpl) IsWishlisted(ctx context.Context, userID string, productID string) (found bool, err error) {
	err = r.store.View(func(doc *file.Document) error {
		for _, item := range doc.WishlistItems {
			if item.UserID == userID && item.ProductID == productID {
				found = true
				return nil
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("component", "IsWishlisted").Msg("")
		return false, errs.ErrStorage
	}

	return found, nil
}

func (r *WishlistFileRepositoryImpl) AddWishlistItem(ctx context.Context, data domain.WishlistItem) (err error) {
	err = r.store.Update(func(doc *file.Document) error {
		for _, item := range doc.WishlistItems {
			if item.UserID == data.UserID && item.ProductID == data.ProductID {
				return nil
			}
		}

		var maxID int64
		for _, item := range doc.WishlistItems {
			if item.ID > maxID {
				maxID = item.ID
			}
		}

		data.ID = maxID + 1
		doc.WishlistItems = append(doc.WishlistItems, data)
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("component", "AddWishlistItem").Msg("")
		return errs.ErrStorage
	}

	return nil
}

func (r *WishlistFileRepositoryImpl) DeleteWishlistItem(ctx context.Context, userID string, productID string) (err error) {
	err = r.store.Update(func(doc *file.Document) error {
		for i := range doc.WishlistItems {
			if doc.WishlistItems[i].UserID == userID && doc.WishlistItems[i].ProductID == productID {
				doc.WishlistItems = append(doc.WishlistItems[:i], doc.WishlistItems[i+1:]...)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteWishlistItem").Msg("")
		return errs.ErrStorage
	}

	return nil
}
