package models

// Game is a cart entry. The ID is assigned by the external catalog and the
// price is the catalog price at the time the game was added.
type Game struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
