package handler

import (
	"net/http"

	"github.com/vfg2006/ads-insights-gateway/internal/api/handler/router"
	"github.com/vfg2006/ads-insights-gateway/internal/usecases/authenticating"
	"github.com/vfg2006/ads-insights-gateway/internal/usecases/insighting"
	"github.com/vfg2006/ads-insights-gateway/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Insights(service insighting.Reporter, gate authenticating.Gate) []router.Route {
	auth := []func(http.Handler) http.Handler{middleware.AuthMiddleware(gate)}

	return []router.Route{
		{
			Path:        "/spend/today",
			Method:      http.MethodGet,
			Handler:     GetSpendToday(service),
			Middlewares: auth,
		},
		{
			Path:        "/insights/campaigns",
			Method:      http.MethodGet,
			Handler:     GetCampaignInsights(service),
			Middlewares: auth,
		},
		{
			Path:        "/insights/ads",
			Method:      http.MethodGet,
			Handler:     GetAdInsights(service),
			Middlewares: auth,
		},
	}
}
