package dto

const (
	WishlistActionToggle = "toggle"
	WishlistActionAdd    = "add"
	WishlistActionRemove = "remove"
)

type WishlistRequest struct {
	UserID    string
	ProductID string `json:"product_id" validate:"required"`
	Action    string `json:"action" validate:"required,oneof=toggle add remove"`
}
