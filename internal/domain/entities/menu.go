package entities

import "time"

// Menu is a daily menu (cardápio) referenced by guide day assignments.
type Menu struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
