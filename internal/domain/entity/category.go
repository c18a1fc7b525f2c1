// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Category groups dishes on the menu. Names are unique across the restaurant.
type Category struct {
	ID   int64  // Auto-assigned identifier.
	Name string // Unique display name, at least two characters.
}
