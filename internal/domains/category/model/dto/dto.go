package dto

import (
	"github.com/google/uuid"

	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/category/model"
	gDto "github.com/Ha-r-i/Picolo-Cafe-Website/shared/dto"
	gModel "github.com/Ha-r-i/Picolo-Cafe-Website/shared/model"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/timezone"
)

type CreateCategoryRequest struct {
	Value string `json:"value" validate:"required,max=50"`
	Label string `json:"label" validate:"required,max=100"`
	Order int    `json:"order" validate:"omitempty,gte=0"`
}

func (c *CreateCategoryRequest) ToModel(user string) model.Category {
	order := c.Order
	if order == 0 {
		order = model.DefaultCreateOrder
	}

	return model.Category{
		ID:        uuid.NewString(),
		Value:     c.Value,
		Label:     c.Label,
		SortOrder: order,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCategoryRequest struct {
	Label string `db:"label"      json:"label" validate:"omitempty,max=100"`
	Order int    `db:"sort_order" json:"order" validate:"omitempty,gte=0"`
}

type CategoryResponse struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Label string `json:"label"`
	Order int    `json:"order"`
	gDto.Metadata
}

func (r *CategoryResponse) FromModel(model model.Category) {
	r.ID = model.ID
	r.Value = model.Value
	r.Label = model.Label
	r.Order = model.SortOrder
	r.Metadata.FromModel(model.Metadata)
}

type GetCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

func (r *GetCategoriesResponse) FromModels(models []model.Category) {
	r.Categories = make([]CategoryResponse, len(models))
	for i, mod := range models {
		r.Categories[i].FromModel(mod)
	}
}
