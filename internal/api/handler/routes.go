package handler

import (
	"net/http"

	"github.com/vfg2006/nps-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/nps-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/authorizing"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/commenting"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/dailyseries"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/nps-dashboard-api/internal/usecases/metrics"
	"github.com/vfg2006/nps-dashboard-api/pkg/middleware"
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
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/confirm-email",
			Method:  http.MethodPost,
			Handler: ConfirmEmail(service),
		},
		{
			Path:    "/v1/resend-confirmation",
			Method:  http.MethodPost,
			Handler: ResendConfirmation(service),
		},
		{
			Path:    "/v1/password-reset/request",
			Method:  http.MethodPost,
			Handler: RequestPasswordReset(service),
		},
		{
			Path:    "/v1/password-reset/confirm",
			Method:  http.MethodPost,
			Handler: ResetPassword(service),
		},
		{
			Path:    "/v1/logout",
			Method:  http.MethodPost,
			Handler: Logout(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func User(service authenticating.Authenticator, gate *authorizing.Gate) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(gate)},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(gate)},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(gate)},
		},
		{
			Path:        "/v1/users/:id/roles",
			Method:      http.MethodPut,
			Handler:     ManageUserRoles(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(gate)},
		},
	}
}

func MetricCards(service metrics.MetricStore, gate *authorizing.Gate) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cards",
			Method:      http.MethodGet,
			Handler:     GetCards(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.StaffOnly(gate)},
		},
		{
			Path:        "/v1/cards/:card_key",
			Method:      http.MethodPut,
			Handler:     UpsertCard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.StaffOnly(gate)},
		},
	}
}

func DailySeries(service dailyseries.DailyStore, gate *authorizing.Gate) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/daily",
			Method:      http.MethodGet,
			Handler:     GetDailySeries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.StaffOnly(gate)},
		},
		{
			Path:        "/v1/daily/:day",
			Method:      http.MethodPut,
			Handler:     UpsertDay(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.StaffOnly(gate)},
		},
	}
}

func Comments(service commenting.CommentStore, gate *authorizing.Gate) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/comments",
			Method:      http.MethodGet,
			Handler:     ListComments(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.StaffOnly(gate)},
		},
		{
			Path:        "/v1/comments",
			Method:      http.MethodPost,
			Handler:     AddComment(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.StaffOnly(gate)},
		},
		{
			Path:        "/v1/comments/:id",
			Method:      http.MethodPatch,
			Handler:     UpdateComment(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.StaffOnly(gate)},
		},
		{
			Path:        "/v1/comments/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteComment(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.StaffOnly(gate)},
		},
	}
}

func Dashboard(service dashboard.Refresher, gate *authorizing.Gate) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/refresh",
			Method:      http.MethodGet,
			Handler:     RefreshDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.StaffOnly(gate)},
		},
	}
}

func Preferences(repo repository.PreferenceRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/me/preferences",
			Method:  http.MethodGet,
			Handler: GetPreferences(repo),
		},
		{
			Path:    "/v1/me/preferences",
			Method:  http.MethodPut,
			Handler: SavePreferences(repo),
		},
	}
}

func CronJobs(services CronJobServices, gate *authorizing.Gate) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(gate)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly(gate)},
		},
	}
}
