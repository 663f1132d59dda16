package entity

// Category agrupa items del catálogo. Name es único.
type Category struct {
	ID          string
	Name        string
	Description string
}
