package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Ha-r-i/Picolo-Cafe-Website/config"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/otel"
	categoryModel "github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/category/model"
	categoryRepo "github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/category/repository"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/menu/model"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/menu/model/dto"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/menu/repository"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/cache"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/constant"
	gDto "github.com/Ha-r-i/Picolo-Cafe-Website/shared/dto"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/failure"
)

const (
	cacheGetMenuItem    = "menu:get"
	cacheGetAllMenu     = "menu:gets"
	cacheGetBestSellers = "menu:best-sellers"
)

type Menu interface {
	GetAll(ctx context.Context, category string) (dto.GetMenuResponse, error)
	GetBestSellers(ctx context.Context) (dto.GetMenuItemsResponse, error)
	GetByID(ctx context.Context, id string) (dto.MenuItemResponse, error)
	Create(ctx context.Context, req dto.CreateMenuItemRequest) error
	Update(ctx context.Context, req dto.UpdateMenuItemRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Menu
	categoryRepo categoryRepo.Category
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Menu, categoryRepo categoryRepo.Category, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Menu {
	return &serviceImpl{
		repo:         repo,
		categoryRepo: categoryRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// GetAll returns the catalog grouped by category. An optional category value
// narrows the listing before grouping.
func (s *serviceImpl) GetAll(ctx context.Context, category string) (res dto.GetMenuResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllMenu, category)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for menu")

		return res, nil
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldName,
		SortDir: constant.SortDirAsc,
	}

	filter := gDto.FilterGroup{}
	if category != "" {
		filter = gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldCategory,
					Value:    category,
					Operator: gDto.FilterOperatorEq,
					Table:    model.TableName,
				},
			},
		}
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu items")

		return res, failure.Unavailable("unable to load the menu, please try again later") // nolint:wrapcheck
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save menu to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetBestSellers(ctx context.Context) (res dto.GetMenuItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBestSellers")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBestSellers)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for best sellers")

		return res, nil
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldName,
		SortDir: constant.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsBestSeller,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get best sellers")

		return res, failure.Unavailable("unable to load best sellers, please try again later") // nolint:wrapcheck
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save best sellers to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByID(ctx context.Context, id string) (res dto.MenuItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetMenuItem, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for menu item")

		return res, nil
	}

	item, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get menu item")

		return res, failure.Unavailable("unable to load the menu item, please try again later") // nolint:wrapcheck
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("menu item not found") // nolint:wrapcheck
	}

	res.FromModel(item)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save menu item to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMenuItemRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.validateCategory(ctx, req.Category); err != nil {
		return err
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create menu item")

		return fmt.Errorf("failed to create menu item: %w", err)
	}

	s.invalidateListings(ctx)

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateMenuItemRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateMenuItemRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if menu item exists")

		return fmt.Errorf("failed to check if menu item exists: %w", err)
	}

	if !exist {
		return failure.NotFound("menu item not found") // nolint:wrapcheck
	}

	if req.Category != "" {
		if err = s.validateCategory(ctx, req.Category); err != nil {
			return err
		}
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update menu item")

		return fmt.Errorf("failed to update menu item: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetMenuItem, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete menu item from cache")
		}
	}()
	s.invalidateListings(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if menu item exists")

		return fmt.Errorf("failed to check if menu item exists: %w", err)
	}

	if !exist {
		return failure.NotFound("menu item not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete menu item")

		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetMenuItem, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete menu item from cache")
		}
	}()
	s.invalidateListings(ctx)

	return nil
}

// validateCategory accepts any value present in the persisted categories or
// the built-in defaults. The reference stays soft either way.
func (s *serviceImpl) validateCategory(ctx context.Context, value string) error {
	categories, err := s.categoryRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to load categories for validation")

		return fmt.Errorf("failed to load categories: %w", err)
	}

	categories = append(categories, categoryModel.Defaults()...)

	for _, category := range categories {
		if strings.EqualFold(category.Value, value) {
			return nil
		}
	}

	return failure.BadRequestFromString("category does not exist") // nolint:wrapcheck
}

func (s *serviceImpl) invalidateListings(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllMenu)
		shared.InvalidateCaches(c, s.cache, cacheGetBestSellers)
	}()
}
