package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/statistics"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachStatisticRoutes(router chi.Router, middlewares *middlewares.Middlewares, statisticController *statistics.StatisticController) {
	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleDoctor)).
		Get("/appointments", statisticController.GetAppointmentStats)

	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleDoctor)).
		Get("/prescriptions", statisticController.GetPrescriptionStats)
}
