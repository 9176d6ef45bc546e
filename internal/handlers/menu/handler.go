package menu

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/otel"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/menu/model"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/menu/model/dto"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/menu/service"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/constant"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/validator"
	"github.com/Ha-r-i/Picolo-Cafe-Website/transport/http/response"
)

type Handler struct {
	service service.Menu
	otel    otel.Otel
}

func New(service service.Menu, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/menu", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetMenu)
		routerGroup.Get("/best-sellers", handler.GetBestSellers)
		routerGroup.Get("/{id}", handler.GetMenuItemByID)
		routerGroup.Post("/", handler.CreateMenuItem)
		routerGroup.Patch("/{id}", handler.UpdateMenuItem)
		routerGroup.Delete("/{id}", handler.DeleteMenuItem)
	})
}

// GetMenu retrieves the menu grouped by category.
// @Summary Get the menu
// @Description Retrieve all menu items grouped by category, optionally narrowed to a single category.
// @Tags Menu
// @Accept json
// @Produce json
// @Param category query string false "Filter by category value"
// @Success 200 {object} response.Data[dto.GetMenuResponse] "Menu grouped by category"
// @Failure 503 {object} response.Error
// @Router /v1/menu [get]
func (handler *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenu")
	defer scope.End()

	category := r.URL.Query().Get(model.FieldCategory)

	menu, err := handler.service.GetAll(ctx, category)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu retrieved successfully")

	response.WithJSON(w, http.StatusOK, menu)
}

// GetBestSellers retrieves the menu items flagged as best sellers.
// @Summary Get best seller menu items
// @Description Retrieve the menu items flagged as best sellers for the landing page.
// @Tags Menu
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.GetMenuItemsResponse] "List of best sellers"
// @Failure 503 {object} response.Error
// @Router /v1/menu/best-sellers [get]
func (handler *Handler) GetBestSellers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBestSellers")
	defer scope.End()

	items, err := handler.service.GetBestSellers(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get best sellers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Best sellers retrieved successfully")

	response.WithJSON(w, http.StatusOK, items)
}

// GetMenuItemByID retrieves a menu item by its ID.
// @Summary Get a menu item by ID
// @Description Retrieve a menu item by its unique identifier.
// @Tags Menu
// @Accept json
// @Produce json
// @Param id path string true "Menu Item ID"
// @Success 200 {object} response.Data[dto.MenuItemResponse] "Menu item details"
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/menu/{id} [get]
func (handler *Handler) GetMenuItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenuItemByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	item, err := handler.service.GetByID(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu item by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Menu item retrieved successfully")

	response.WithJSON(w, http.StatusOK, item)
}

// CreateMenuItem handles the creation of a new menu item.
// @Summary Create a new menu item
// @Description Create a new menu item with the provided details. The category must exist.
// @Tags Menu
// @Accept json
// @Produce json
// @Param request body dto.CreateMenuItemRequest true "Create Menu Item Request"
// @Success 201 {object} response.Message "Menu item created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu [post]
// @Security BearerAuth
func (handler *Handler) CreateMenuItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMenuItem")
	defer scope.End()

	req := dto.CreateMenuItemRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create menu item")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Menu item created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Menu item created successfully")
}

// UpdateMenuItem updates an existing menu item by its ID.
// @Summary Update a menu item by ID
// @Description Update the details of an existing menu item.
// @Tags Menu
// @Accept json
// @Produce json
// @Param id path string true "Menu Item ID"
// @Param request body dto.UpdateMenuItemRequest true "Update Menu Item Request"
// @Success 200 {object} response.Message "Menu item updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMenuItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateMenuItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update menu item")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Menu item updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Menu item updated successfully")
}

// DeleteMenuItem deletes a menu item by its ID.
// @Summary Delete a menu item by ID
// @Description Delete a menu item using its unique identifier.
// @Tags Menu
// @Accept json
// @Produce json
// @Param id path string true "Menu Item ID"
// @Success 200 {object} response.Message "Menu item deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/menu/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMenuItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete menu item")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Menu item deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Menu item deleted successfully")
}
