package repository

import (
	"context"

	"github.com/andikahilmy/marketplace-service/internal/domain"
)

type ProductRepository interface {
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (data domain.Product, err error)
	GetProductsBySeller(ctx context.Context, sellerID string) (data []domain.Product, err error)
	AddProduct(ctx context.Context, data domain.Product) (err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}

type OrderRepository interface {
	HandleTrx(ctx context.Context, fn func(ctx context.Context, repo OrderRepository) error) error

	AddOrder(ctx context.Context, data domain.Order) (id int64, err error)
	AddOrderDetails(ctx context.Context, data []domain.OrderDetail) (err error)
	GetOrdersByUser(ctx context.Context, userID string) (data []domain.Order, err error)
}

type WishlistRepository interface {
	GetWishlistItems(ctx context.Context, userID string) (data []domain.WishlistItem, err error)
	IsWishlisted(ctx context.Context, userID string, productID string) (found bool, err error)
	AddWishlistItem(ctx context.Context, data domain.WishlistItem) (err error)
	DeleteWishlistItem(ctx context.Context, userID string, productID string) (err error)
}

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (data domain.User, err error)
	AddUser(ctx context.Context, data domain.User) (id int64, err error)
	UpdateUser(ctx context.Context, data domain.User) (err error)
}
