package handler

import (
	"net/http"

	"github.com/vfg2006/publimais-api/internal/api/handler/router"
	"github.com/vfg2006/publimais-api/internal/usecases/authenticating"
	"github.com/vfg2006/publimais-api/internal/usecases/benchmarking"
	"github.com/vfg2006/publimais-api/internal/usecases/importing"
	"github.com/vfg2006/publimais-api/internal/usecases/insighting"
	"github.com/vfg2006/publimais-api/internal/usecases/packaging"
	"github.com/vfg2006/publimais-api/internal/usecases/reporting"
	"github.com/vfg2006/publimais-api/internal/usecases/testprofiles"
	"github.com/vfg2006/publimais-api/pkg/metrics"
	"github.com/vfg2006/publimais-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
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
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodPut,
			Handler:     UpdateMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// Analytics expõe os cálculos sem estado, sem acesso ao banco
func Analytics() []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics/engagement-rate",
			Method:      http.MethodPost,
			Handler:     EngagementRate(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/engagement",
			Method:      http.MethodPost,
			Handler:     Engagement(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/campaign-kpis",
			Method:      http.MethodPost,
			Handler:     CampaignKPIs(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/growth-peaks",
			Method:      http.MethodPost,
			Handler:     GrowthPeaks(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Dashboard(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/campaigns/:id",
			Method:      http.MethodGet,
			Handler:     GetCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Imports(service importing.Importer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/import/posts",
			Method:      http.MethodPost,
			Handler:     ImportPosts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/import/followers",
			Method:      http.MethodPost,
			Handler:     ImportFollowers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/export/posts",
			Method:      http.MethodGet,
			Handler:     ExportPosts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Packages(service packaging.PackageService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/packages",
			Method:      http.MethodGet,
			Handler:     ListPackages(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/packages",
			Method:      http.MethodPost,
			Handler:     CreatePackage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/packages/:id",
			Method:      http.MethodPut,
			Handler:     UpdatePackage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/packages/:id",
			Method:      http.MethodDelete,
			Handler:     DeletePackage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Reports inclui a página pública do relatório, protegida apenas pelo limite por IP
func Reports(service reporting.Reporter, limiter *middleware.IPRateLimiter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports",
			Method:      http.MethodPost,
			Handler:     GenerateReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reports/share",
			Method:      http.MethodPost,
			Handler:     ShareReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/public/reports/:public_id",
			Method:      http.MethodGet,
			Handler:     PublicReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RateLimit(limiter)},
		},
	}
}

func Benchmarks(service benchmarking.Benchmarker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/benchmark",
			Method:      http.MethodGet,
			Handler:     Benchmark(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Admin(service testprofiles.TestProfileService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/test-profiles",
			Method:      http.MethodPost,
			Handler:     ConnectTestProfile(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/test-profiles",
			Method:      http.MethodGet,
			Handler:     ListTestProfiles(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/test-profiles/:id/force-update",
			Method:      http.MethodPost,
			Handler:     ForceUpdateTestProfile(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/test-profiles/:id/report",
			Method:      http.MethodGet,
			Handler:     TestProfileReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/test-profiles/:id",
			Method:      http.MethodDelete,
			Handler:     DisconnectTestProfile(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/logs",
			Method:      http.MethodGet,
			Handler:     ListAdminLogs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Cron(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
