package handler

import (
	"net/http"

	"github.com/vfg2006/bank-intelligence-api/internal/api/handler/router"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/analytics"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/authenticating"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/customer"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/insighting"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/scoring"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/seeding"
	"github.com/vfg2006/bank-intelligence-api/internal/usecases/segmenting"
	"github.com/vfg2006/bank-intelligence-api/pkg/middleware"
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

func Customers(service customer.CustomerService, insightService insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/customers",
			Method:      http.MethodGet,
			Handler:     CustomerList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers/:id",
			Method:      http.MethodGet,
			Handler:     GetCustomer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCustomer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/transactions",
			Method:      http.MethodGet,
			Handler:     TransactionList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers/:id/transactions",
			Method:      http.MethodGet,
			Handler:     CustomerTransactions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers/:id/interactions",
			Method:      http.MethodGet,
			Handler:     CustomerInteractions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers/:id/recommendations",
			Method:      http.MethodPost,
			Handler:     RecommendProducts(insightService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Segments(service segmenting.Segmenter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/segments",
			Method:      http.MethodGet,
			Handler:     SegmentList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/segments/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshSegments(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/segments/:id/members",
			Method:      http.MethodGet,
			Handler:     SegmentMembers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func RiskAssessments(service scoring.RiskScorer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/risk-assessments",
			Method:      http.MethodGet,
			Handler:     RiskAssessmentList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/risk-assessments/batch",
			Method:      http.MethodPost,
			Handler:     RunBatchRiskAnalysis(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/risk-assessments/:id/status",
			Method:      http.MethodPut,
			Handler:     UpdateRiskAssessmentStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/customers/:id/risk-assessment",
			Method:      http.MethodPost,
			Handler:     AssessCustomerRisk(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/insights",
			Method:      http.MethodGet,
			Handler:     InsightList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/insights/generate",
			Method:      http.MethodPost,
			Handler:     GenerateInsights(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/insights/:id/status",
			Method:      http.MethodPut,
			Handler:     UpdateInsightStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Analytics(service analytics.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analytics/dashboard",
			Method:      http.MethodGet,
			Handler:     Dashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/summary",
			Method:      http.MethodGet,
			Handler:     PortfolioSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/risk-distribution",
			Method:      http.MethodGet,
			Handler:     RiskDistribution(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/analytics/monthly-volumes",
			Method:      http.MethodGet,
			Handler:     MonthlyVolumes(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Seeding(service seeding.Seeder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/seed",
			Method:      http.MethodPost,
			Handler:     RunSeed(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
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
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
