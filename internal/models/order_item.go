package models

// OrderItem embeds a copy of the product as it was at order time. The
// snapshot never changes after creation, even if the product record does.
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}
