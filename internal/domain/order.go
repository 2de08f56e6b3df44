package domain

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "Placed"
	OrderStatusPreparing OrderStatus = "Preparing"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// String representation (for logging)
func (s OrderStatus) String() string {
	return string(s)
}

// Order is the durable record submitted to the data API. Items holds a
// frozen JSON snapshot of the cart at submission time, never a live
// reference.
type Order struct {
	ID          int64       `json:"id,omitempty"`
	UserID      string      `json:"user_id"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Email       string      `json:"email"`
	TotalAmount float64     `json:"total_amount"`
	Items       string      `json:"items"`
	Status      OrderStatus `json:"status"`
	CreatedAt   string      `json:"created_at,omitempty"`
}

// OrderConfirmation is what a successful checkout hands back to the UI.
type OrderConfirmation struct {
	Total   float64 `json:"total"`
	Message string  `json:"message"`
}
