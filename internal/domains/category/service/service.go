package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Ha-r-i/Picolo-Cafe-Website/config"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/otel"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/category/model"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/category/model/dto"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/category/repository"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/cache"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/constant"
	gDto "github.com/Ha-r-i/Picolo-Cafe-Website/shared/dto"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/failure"
)

const (
	cacheGetAllCategory = "category:gets"
)

type Category interface {
	GetAll(ctx context.Context) (dto.GetCategoriesResponse, error)
	Create(ctx context.Context, req dto.CreateCategoryRequest) error
	Update(ctx context.Context, req dto.UpdateCategoryRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Category
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Category, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Category {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// GetAll serves the persisted categories ordered by sort weight, or the
// built-in defaults while the table is still empty.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetCategoriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllCategory)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for categories")

		return res, nil
	}

	params := gDto.QueryParams{
		SortBy:  model.FieldSortOrder,
		SortDir: constant.SortDirAsc,
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get categories")

		return res, failure.Unavailable("unable to load categories, please try again later") // nolint:wrapcheck
	}

	if len(models) == 0 {
		models = model.Defaults()
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save categories to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCategoryRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(req.Value, model.FieldValue, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if category exists")

		return fmt.Errorf("failed to check if category exists: %w", err)
	}

	if exist {
		return failure.Conflict("category already exists") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create category")

		return fmt.Errorf("failed to create category: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllCategory)
	}()

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCategoryRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateCategoryRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if category exists")

		return fmt.Errorf("failed to check if category exists: %w", err)
	}

	if !exist {
		return failure.NotFound("category not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update category")

		return fmt.Errorf("failed to update category: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllCategory)
	}()

	return nil
}

// Delete removes the category only. Menu items keep their category value;
// readers group unknown values under the fallback bucket.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if category exists")

		return fmt.Errorf("failed to check if category exists: %w", err)
	}

	if !exist {
		return failure.NotFound("category not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete category")

		return fmt.Errorf("failed to delete category: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllCategory)
	}()

	return nil
}
