//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/Ha-r-i/Picolo-Cafe-Website/config"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/cloudinary"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/emailjs"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/jwt"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/otel"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/postgres"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/redis"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/s3"
	"github.com/Ha-r-i/Picolo-Cafe-Website/permissions"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/cache"
	"github.com/Ha-r-i/Picolo-Cafe-Website/transport/http"
	"github.com/Ha-r-i/Picolo-Cafe-Website/transport/http/middleware"
	"github.com/Ha-r-i/Picolo-Cafe-Website/transport/http/router"

	authService "github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/auth/service"
	categoryRepository "github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/category/repository"
	categoryService "github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/category/service"
	dashboardService "github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/dashboard/service"
	imageService "github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/image/service"
	menuRepository "github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/menu/repository"
	menuService "github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/menu/service"
	reservationRepository "github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/reservation/repository"
	reservationService "github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/reservation/service"
	userRepository "github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/user/repository"

	authHandler "github.com/Ha-r-i/Picolo-Cafe-Website/internal/handlers/auth"
	categoryHandler "github.com/Ha-r-i/Picolo-Cafe-Website/internal/handlers/category"
	dashboardHandler "github.com/Ha-r-i/Picolo-Cafe-Website/internal/handlers/dashboard"
	imageHandler "github.com/Ha-r-i/Picolo-Cafe-Website/internal/handlers/image"
	menuHandler "github.com/Ha-r-i/Picolo-Cafe-Website/internal/handlers/menu"
	reservationHandler "github.com/Ha-r-i/Picolo-Cafe-Website/internal/handlers/reservation"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	cloudinary.New,
	emailjs.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var menuDomain = wire.NewSet(
	menuRepository.New,
	menuService.New,
)

var categoryDomain = wire.NewSet(
	categoryRepository.New,
	categoryService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var imageDomain = wire.NewSet(
	imageService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var domains = wire.NewSet(
	reservationDomain,
	menuDomain,
	categoryDomain,
	authDomain,
	imageDomain,
	dashboardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	reservationHandler.New,
	menuHandler.New,
	categoryHandler.New,
	imageHandler.New,
	dashboardHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
