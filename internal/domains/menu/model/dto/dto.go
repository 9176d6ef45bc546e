package dto

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	categoryModel "github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/category/model"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/menu/model"
	gDto "github.com/Ha-r-i/Picolo-Cafe-Website/shared/dto"
	gModel "github.com/Ha-r-i/Picolo-Cafe-Website/shared/model"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/timezone"
)

type CreateMenuItemRequest struct {
	Name         string `json:"name"           validate:"required,max=100"`
	Description  string `json:"description"    validate:"omitempty,max=500"`
	Price        string `json:"price"          validate:"required,max=20"`
	Category     string `json:"category"       validate:"required,max=50"`
	ImageURL     string `json:"image_url"      validate:"omitempty,url,max=500"`
	IsBestSeller bool   `json:"is_best_seller"`
}

func (c *CreateMenuItemRequest) ToModel(user string) model.MenuItem {
	return model.MenuItem{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Description:  c.Description,
		Price:        c.Price,
		Category:     c.Category,
		ImageURL:     c.ImageURL,
		IsBestSeller: c.IsBestSeller,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateMenuItemRequest struct {
	Name         string `db:"name"           json:"name"           validate:"omitempty,max=100"`
	Description  string `db:"description"    json:"description"    validate:"omitempty,max=500"`
	Price        string `db:"price"          json:"price"          validate:"omitempty,max=20"`
	Category     string `db:"category"       json:"category"       validate:"omitempty,max=50"`
	ImageURL     string `db:"image_url"      json:"image_url"      validate:"omitempty,url,max=500"`
	IsBestSeller *bool  `db:"is_best_seller" json:"is_best_seller" validate:"omitempty"`
}

type MenuItemResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        string `json:"price"`
	Category     string `json:"category"`
	ImageURL     string `json:"image_url"`
	IsBestSeller bool   `json:"is_best_seller"`
	gDto.Metadata
}

func (r *MenuItemResponse) FromModel(model model.MenuItem) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Price = model.Price
	r.Category = model.Category
	r.ImageURL = model.ImageURL
	r.IsBestSeller = model.IsBestSeller
	r.Metadata.FromModel(model.Metadata)
}

type MenuCategoryGroup struct {
	Category string             `json:"category"`
	Items    []MenuItemResponse `json:"items"`
}

type GetMenuResponse struct {
	Categories []MenuCategoryGroup `json:"categories"`
	TotalData  int                 `json:"total_data"`
}

// FromModels groups name-sorted items by category, categories ascending.
// Items without a category land in the fallback bucket.
func (r *GetMenuResponse) FromModels(models []model.MenuItem) {
	r.TotalData = len(models)
	r.Categories = []MenuCategoryGroup{}

	grouped := make(map[string][]MenuItemResponse)

	for _, mod := range models {
		category := mod.Category
		if strings.TrimSpace(category) == "" {
			category = categoryModel.FallbackValue
		}

		var item MenuItemResponse
		item.FromModel(mod)
		grouped[category] = append(grouped[category], item)
	}

	categories := make([]string, 0, len(grouped))
	for category := range grouped {
		categories = append(categories, category)
	}
	slices.Sort(categories)

	for _, category := range categories {
		r.Categories = append(r.Categories, MenuCategoryGroup{
			Category: category,
			Items:    grouped[category],
		})
	}
}

type GetMenuItemsResponse struct {
	Items     []MenuItemResponse `json:"items"`
	TotalData int                `json:"total_data"`
}

func (r *GetMenuItemsResponse) FromModels(models []model.MenuItem) {
	r.TotalData = len(models)

	r.Items = make([]MenuItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}
