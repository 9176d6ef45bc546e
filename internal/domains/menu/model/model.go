package model

import (
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/model"
)

const (
	TableName  = "menu_items"
	EntityName = "menu_item"

	FieldID           = "id"
	FieldName         = "name"
	FieldDescription  = "description"
	FieldPrice        = "price"
	FieldCategory     = "category"
	FieldImageURL     = "image_url"
	FieldIsBestSeller = "is_best_seller"
)

type MenuItem struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	Description  string `db:"description"`
	Price        string `db:"price"`
	Category     string `db:"category"`
	ImageURL     string `db:"image_url"`
	IsBestSeller bool   `db:"is_best_seller"`
	model.Metadata
}
