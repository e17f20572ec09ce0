package dto

const (
	WishlistResultAdded   = "added"
	WishlistResultRemoved = "removed"
)

// WishlistActionResponse reports the outcome of a wishlist mutation.
// Changed is false when the request was a no-op (adding an existing
// member or removing an absent one).
type WishlistActionResponse struct {
	ProductID string `json:"product_id"`
	Action    string `json:"action"`
	Changed   bool   `json:"changed"`
}

type WishlistResponse struct {
	ProductIDs []string `json:"product_ids"`
}
