package domain

type WishlistItem struct {
	ID        int64  `db:"id" json:"id"`
	UserID    string `db:"user_id" json:"user_id"`
	ProductID string `db:"product_id" json:"product_id"`
	CreatedAt int64  `db:"created_at" json:"created_at"`
}
