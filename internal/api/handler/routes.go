package handler

import (
	"net/http"

	"github.com/vfg2006/marketing-dashboard-api/infrastructure/warehouse"
	"github.com/vfg2006/marketing-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/ordering"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/trending"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func GoogleMetrics(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/google/adspend",
			Method:  http.MethodPost,
			Handler: MetricSeriesHandler(service, domain.PlatformGoogle, domain.MetricSpend),
		},
		{
			Path:    "/v1/google/clicks",
			Method:  http.MethodPost,
			Handler: MetricSeriesHandler(service, domain.PlatformGoogle, domain.MetricClicks),
		},
		{
			Path:    "/v1/google/impressions",
			Method:  http.MethodPost,
			Handler: MetricSeriesHandler(service, domain.PlatformGoogle, domain.MetricImpressions),
		},
		{
			Path:    "/v1/google/ctr",
			Method:  http.MethodPost,
			Handler: MetricSeriesHandler(service, domain.PlatformGoogle, domain.MetricCTR),
		},
		{
			Path:    "/v1/google/conversions",
			Method:  http.MethodPost,
			Handler: MetricSeriesHandler(service, domain.PlatformGoogle, domain.MetricConversions),
		},
	}
}

func MetaMetrics(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/meta/adspend",
			Method:  http.MethodPost,
			Handler: MetricSeriesHandler(service, domain.PlatformMeta, domain.MetricSpend),
		},
	}
}

func ShopifyMetrics(service ordering.Orderer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/shopify/orders",
			Method:  http.MethodPost,
			Handler: GetOrders(service),
		},
		{
			Path:    "/v1/shopify/net-revenue",
			Method:  http.MethodPost,
			Handler: GetNetRevenue(service),
		},
		{
			Path:    "/v1/shopify/returns",
			Method:  http.MethodPost,
			Handler: GetReturnOrders(service),
		},
		{
			Path:    "/v1/shopify/mer",
			Method:  http.MethodPost,
			Handler: GetMER(service),
		},
	}
}

func Orders(service ordering.Orderer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/orders/export",
			Method:  http.MethodPost,
			Handler: ExportOrders(service),
		},
	}
}

func Trends(service trending.Trender) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/trends/daily",
			Method:  http.MethodPost,
			Handler: GetDailyTrend(service),
		},
	}
}

func Drilldown(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/drilldown",
			Method:  http.MethodPost,
			Handler: GetDrilldown(service),
		},
	}
}

func Warehouse(source warehouse.Source) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/warehouse/health",
			Method:  http.MethodGet,
			Handler: WarehouseHealth(source),
		},
		{
			Path:    "/v1/warehouse/tables",
			Method:  http.MethodGet,
			Handler: WarehouseTables(source),
		},
		{
			Path:    "/v1/warehouse/tables/:table/schema",
			Method:  http.MethodGet,
			Handler: WarehouseTableSchema(source),
		},
		{
			Path:    "/v1/warehouse/tables/:table/preview",
			Method:  http.MethodGet,
			Handler: WarehouseTablePreview(source),
		},
	}
}
