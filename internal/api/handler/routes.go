package handler

import (
	"net/http"

	"github.com/cloutjet/admin-dashboard/internal/api/handler/router"
	"github.com/cloutjet/admin-dashboard/internal/usecases/authenticating"
	"github.com/cloutjet/admin-dashboard/internal/usecases/dashboard"
	"github.com/cloutjet/admin-dashboard/pkg/middleware"
)

var sessionRequired = []func(http.Handler) http.Handler{middleware.RequireSession()}

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
			Path:        "/v1/logout",
			Method:      http.MethodPost,
			Handler:     Logout(service),
			Middlewares: sessionRequired,
		},
	}
}

// Pages são as visões do painel. Sem sessão as listas voltam vazias, como
// no navegador sem token; só a visão geral exige login.
func Pages(service dashboard.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetOverview(service),
		},
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: GetAccounts(service),
		},
		{
			Path:    "/v1/escrow",
			Method:  http.MethodGet,
			Handler: GetEscrow(service),
		},
		{
			Path:    "/v1/influencers",
			Method:  http.MethodGet,
			Handler: GetInfluencers(service),
		},
		{
			Path:    "/v1/orders",
			Method:  http.MethodGet,
			Handler: GetOrders(service),
		},
		{
			Path:    "/v1/orders/assignable-influencers",
			Method:  http.MethodGet,
			Handler: GetAssignableInfluencers(service),
		},
	}
}

func Actions(service dashboard.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:id/:action",
			Method:      http.MethodPost,
			Handler:     ReviewAccount(service),
			Middlewares: sessionRequired,
		},
		{
			Path:        "/v1/escrow/:id/:action",
			Method:      http.MethodPost,
			Handler:     RunEscrowAction(service),
			Middlewares: sessionRequired,
		},
		{
			Path:        "/v1/influencers/:id/:action",
			Method:      http.MethodPost,
			Handler:     ReviewInfluencer(service),
			Middlewares: sessionRequired,
		},
		{
			Path:        "/v1/orders/:id/assign",
			Method:      http.MethodPost,
			Handler:     AssignOrder(service),
			Middlewares: sessionRequired,
		},
	}
}

func Audit(service dashboard.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/audit",
			Method:      http.MethodGet,
			Handler:     GetAuditLog(service),
			Middlewares: sessionRequired,
		},
	}
}

func Jobs(services JobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/jobs/:type/run",
			Method:      http.MethodPost,
			Handler:     RunJob(services),
			Middlewares: sessionRequired,
		},
		{
			Path:        "/v1/jobs/status",
			Method:      http.MethodGet,
			Handler:     GetJobsStatus(services),
			Middlewares: sessionRequired,
		},
	}
}
