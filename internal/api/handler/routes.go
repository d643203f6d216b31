package handler

import (
	"net/http"

	"github.com/vfg2006/ad-automation-api/infrastructure/repository"
	"github.com/vfg2006/ad-automation-api/internal/api/handler/router"
	"github.com/vfg2006/ad-automation-api/internal/usecases/scheduling"
	"github.com/vfg2006/ad-automation-api/internal/usecases/validating"
	"github.com/vfg2006/ad-automation-api/pkg/middleware"
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

func Rules(
	ruleRepo repository.RuleRepository,
	ruleLogRepo repository.RuleLogRepository,
	gate scheduling.Gate,
	validator validating.Validator,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/rules",
			Method:      http.MethodGet,
			Handler:     ListRules(ruleRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/rules/:id/validate",
			Method:      http.MethodPost,
			Handler:     ValidateRule(ruleRepo, validator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/rules/:id/reset-check",
			Method:      http.MethodPost,
			Handler:     ResetRuleCheck(ruleRepo, gate),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/rules/:id/logs",
			Method:      http.MethodGet,
			Handler:     GetRuleLogs(ruleRepo, ruleLogRepo),
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
