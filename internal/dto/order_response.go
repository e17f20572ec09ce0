package dto

type OrderItemResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int64   `json:"quantity"`
	Amount      float64 `json:"amount"`
}

type OrderResponse struct {
	ID          int64               `json:"id"`
	OrderNumber string              `json:"order_number"`
	UserID      string              `json:"user_id"`
	Amount      float64             `json:"amount"`
	Status      string              `json:"status"`
	CreatedAt   int64               `json:"created_at"`
	OrderItems  []OrderItemResponse `json:"order_items"`
}
