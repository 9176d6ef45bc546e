package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/otel"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/category/model/dto"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/category/service"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/constant"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/validator"
	"github.com/Ha-r-i/Picolo-Cafe-Website/transport/http/response"
)

type Handler struct {
	service service.Category
	otel    otel.Otel
}

func New(service service.Category, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/categories", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCategories)
		routerGroup.Post("/", handler.CreateCategory)
		routerGroup.Patch("/{id}", handler.UpdateCategory)
		routerGroup.Delete("/{id}", handler.DeleteCategory)
	})
}

// GetCategories retrieves all menu categories.
// @Summary Get all categories
// @Description Retrieve all menu categories sorted by their display order. Falls back to the built-in defaults when none are stored.
// @Tags Category
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetCategoriesResponse] "List of categories"
// @Failure 503 {object} response.Error
// @Router /v1/categories [get]
func (handler *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategories")
	defer scope.End()

	categories, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get categories")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Categories retrieved successfully")

	response.WithJSON(w, http.StatusOK, categories)
}

// CreateCategory handles the creation of a new category.
// @Summary Create a new category
// @Description Create a new menu category. The value must be unique.
// @Tags Category
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Create Category Request"
// @Success 201 {object} response.Message "Category created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/categories [post]
// @Security BearerAuth
func (handler *Handler) CreateCategory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCategory")
	defer scope.End()

	req := dto.CreateCategoryRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create category")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Category created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Category created successfully")
}

// UpdateCategory updates an existing category by its ID.
// @Summary Update a category by ID
// @Description Update the label or display order of an existing category.
// @Tags Category
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Update Category Request"
// @Success 200 {object} response.Message "Category updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/categories/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCategory")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCategoryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update category")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Category updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Category updated successfully")
}

// DeleteCategory deletes a category by its ID.
// @Summary Delete a category by ID
// @Description Delete a category using its unique identifier.
// @Tags Category
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} response.Message "Category deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/categories/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCategory")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete category")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Category deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Category deleted successfully")
}
