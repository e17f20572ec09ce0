package domain

type Product struct {
	ID          string  `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	Category    string  `db:"category" json:"category"`
	ImageURL    string  `db:"image_url" json:"image_url"`
	Rating      float64 `db:"rating" json:"rating"`
	Stock       int64   `db:"stock" json:"stock"`
	SellerID    string  `db:"seller_id" json:"seller_id"`
	SellerName  string  `db:"seller_name" json:"seller_name"`
	CreatedAt   int64   `db:"created_at" json:"created_at"`
	UpdatedAt   int64   `db:"updated_at" json:"updated_at"`
	DeletedAt   *int64  `db:"deleted_at" json:"deleted_at,omitempty"`
}
