package models

import "time"

// Order holds an embedded customer snapshot and item snapshots captured at
// creation time. Orders are created once and only ever deleted, so all three
// timestamps carry the same instant.
type Order struct {
	ID          string      `json:"id"`
	Customer    Customer    `json:"customer"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	OrderDate   time.Time   `json:"orderDate"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
