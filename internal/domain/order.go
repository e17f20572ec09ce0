package domain

const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

type Order struct {
	ID          int64   `db:"id" json:"id"`
	OrderNumber string  `db:"order_number" json:"order_number"`
	UserID      string  `db:"user_id" json:"user_id"`
	Amount      float64 `db:"amount" json:"amount"`
	Status      string  `db:"status" json:"status"`
	CreatedAt   int64   `db:"created_at" json:"created_at"`
	UpdatedAt   int64   `db:"updated_at" json:"updated_at"`
	DeletedAt   *int64  `db:"deleted_at" json:"deleted_at,omitempty"`

	OrderDetails []OrderDetail `db:"-" json:"order_details"`
}

type OrderDetail struct {
	ID          int64   `db:"id" json:"id"`
	OrderID     int64   `db:"order_id" json:"order_id"`
	ProductID   string  `db:"product_id" json:"product_id"`
	ProductName string  `db:"product_name" json:"product_name"`
	Quantity    int64   `db:"quantity" json:"quantity"`
	Amount      float64 `db:"amount" json:"amount"`
	CreatedAt   int64   `db:"created_at" json:"created_at"`
	UpdatedAt   int64   `db:"updated_at" json:"updated_at"`
	DeletedAt   *int64  `db:"deleted_at" json:"deleted_at,omitempty"`
}
