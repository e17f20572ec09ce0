package service

import (
	"context"

	"github.com/andikahilmy/marketplace-service/internal/dto"
	pkgdto "github.com/andikahilmy/marketplace-service/pkg/dto"
)

type ProductService interface {
	GetProducts(ctx context.Context, filter pkgdto.Filter) (responsePayload pkgdto.PaginationResponse, err error)
	GetProductByID(ctx context.Context, id string) (responsePayload dto.ProductResponse, err error)
	GetProductsBySeller(ctx context.Context, sellerID string) (responsePayload []dto.ProductResponse, err error)
	AddProduct(ctx context.Context, data dto.ProductRequest) (responsePayload dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, data dto.ProductRequest) (responsePayload dto.ProductResponse, err error)
	DeleteProduct(ctx context.Context, id string, actingSellerID string) (err error)
}

type OrderService interface {
	AddOrder(ctx context.Context, req dto.OrderRequest) (responsePayload dto.OrderResponse, err error)
	GetOrdersByUser(ctx context.Context, userID string) (responsePayload []dto.OrderResponse, err error)
}

type WishlistService interface {
	HandleAction(ctx context.Context, req dto.WishlistRequest) (responsePayload dto.WishlistActionResponse, err error)
	GetWishlist(ctx context.Context, userID string) (responsePayload dto.WishlistResponse, err error)
}

type UserService interface {
	Register(ctx context.Context, data dto.UserRequest) (err error)
	Login(ctx context.Context, payload dto.LoginRequest) (respPayload dto.LoginResponse, err error)
	OAuthLogin(ctx context.Context, payload dto.OAuthRequest) (respPayload dto.LoginResponse, err error)
	UpdateProfile(ctx context.Context, payload dto.ProfileUpdateRequest) (err error)
}
