package repository

import (
	"context"

	"github.com/andikahilmy/marketplace-service/internal/domain"
	"github.com/andikahilmy/marketplace-service/internal/infrastructure/database/file"
	"github.com/andikahilmy/marketplace-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

type ProductFileRepositoryImpl struct {
	store *file.Store
}

func CreateProductFileRepository(store *file.Store) ProductRepository {
	return &ProductFileRepositoryImpl{store: store}
}

func (r *ProductFileRepositoryImpl) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	err = r.store.View(func(doc *file.Document) error {
		data = append(data, doc.Products...)
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, errs.ErrStorage
	}

	return data, nil
}

func (r *ProductFileRepositoryImpl) GetProductByID(ctx context.Context, id string) (data domain.Product, err error) {
	err = r.store.View(func(doc *file.Document) error {
		for _, product := range doc.Products {
			if product.ID == id {
				data = product
				return nil
			}
		}
		return errs.ErrNotFound
	})
	if err == errs.ErrNotFound {
		return data, err
	}
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductByID").Msg("")
		return data, errs.ErrStorage
	}

	return data, nil
}

func (r *ProductFileRepositoryImpl) GetProductsBySeller(ctx context.Context, sellerID string) (data []domain.Product, err error) {
	err = r.store.View(func(doc *file.Document) error {
		for _, product := range doc.Products {
			if product.SellerID == sellerID {
				data = append(data, product)
			}
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductsBySeller").Msg("")
		return nil, errs.ErrStorage
	}

	return data, nil
}

func (r *ProductFileRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (err error) {
	err = r.store.Update(func(doc *file.Document) error {
		doc.Products = append(doc.Products, data)
		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return errs.ErrStorage
	}

	return nil
}

func (r *ProductFileRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	err = r.store.Update(func(doc *file.Document) error {
		for i := range doc.Products {
			if doc.Products[i].ID == data.ID {
				doc.Products[i] = data
				return nil
			}
		}
		return errs.ErrNotFound
	})
	if err == errs.ErrNotFound {
		return err
	}
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return errs.ErrStorage
	}

	return nil
}

func (r *ProductFileRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	err = r.store.Update(func(doc *file.Document) error {
		for i := range doc.Products {
			if doc.Products[i].ID == id {
				doc.Products = append(doc.Products[:i], doc.Products[i+1:]...)
				return nil
			}
		}
		return errs.ErrNotFound
	})
	if err == errs.ErrNotFound {
		return err
	}
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return errs.ErrStorage
	}

	return nil
}
