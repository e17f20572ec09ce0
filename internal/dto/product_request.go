package dto

type ProductRequest struct {
	ID          string
	SellerID    string
	SellerName  string
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
	Stock       int64   `json:"stock" validate:"gte=0"`
}
