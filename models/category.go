package models

// Category is a named area of practice used for filtering and matching.
// List order is user-significant: the admin reorders categories with
// move-up/move-down and the homepage renders them in that order.
type Category struct {
	ID   int    `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"` // unique, case-insensitive
	Icon string `bson:"icon" json:"icon"`
}
