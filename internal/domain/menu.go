package domain

// MenuItem is a static menu entry. Built once at startup, never mutated.
type MenuItem struct {
	ID          string
	Name        string
	Type        string
	Category    string
	Price       Money
	Rating      float64
	Description string
	Ingredients []string
	Image       string
}
