package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/handlers/auth"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/handlers/category"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/handlers/dashboard"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/handlers/image"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/handlers/menu"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/handlers/reservation"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Reservation reservation.Handler
	Menu        menu.Handler
	Category    category.Handler
	Image       image.Handler
	Dashboard   dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Menu.Router(routerGroup)
		r.DomainHandlers.Category.Router(routerGroup)
		r.DomainHandlers.Image.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
