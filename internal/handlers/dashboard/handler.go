package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/otel"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/dashboard/service"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/constant"
	"github.com/Ha-r-i/Picolo-Cafe-Website/transport/http/response"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Get("/stats", handler.GetStats)
	})
}

// GetStats retrieves the admin dashboard counters.
// @Summary Get dashboard stats
// @Description Retrieve the booking and menu counters shown on the admin dashboard.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.DashboardStatsResponse] "Dashboard counters"
// @Failure 401 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/dashboard/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.service.GetStats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, stats)
}
