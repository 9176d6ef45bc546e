package model

import (
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/model"
)

const (
	TableName  = "categories"
	EntityName = "category"

	FieldID        = "id"
	FieldValue     = "value"
	FieldLabel     = "label"
	FieldSortOrder = "sort_order"

	FallbackValue = "other"

	DefaultCreateOrder = 999
)

type Category struct {
	ID        string `db:"id"`
	Value     string `db:"value"`
	Label     string `db:"label"`
	SortOrder int    `db:"sort_order"`
	model.Metadata
}

// Defaults is the built-in category list served whenever the table is empty.
func Defaults() []Category {
	return []Category{
		{Value: "signatureKaapi", Label: "Signature Kaapi", SortOrder: 0},
		{Value: "hotCoffee", Label: "Hot Coffee", SortOrder: 1},
		{Value: "coldCoffee", Label: "Cold Coffee", SortOrder: 2},
		{Value: "piccoKidsFavourites", Label: "Picco Kids Favourites", SortOrder: 3},
	}
}
