package routers

import (
	"fmt"
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/appointments"
	"medibook-service/internal/app/services/core/doctors"
	"medibook-service/internal/app/services/core/prescriptions"
	"medibook-service/internal/app/services/core/statistics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	appointmentController *appointments.AppointmentController,
	prescriptionController *prescriptions.PrescriptionController,
	doctorController *doctors.DoctorController,
	statisticController *statistics.StatisticController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})

			r.Route("/prescriptions", func(r chi.Router) {
				attachPrescriptionRoutes(r, middlewares, prescriptionController)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, doctorController)
			})

			r.Route("/statistics", func(r chi.Router) {
				attachStatisticRoutes(r, middlewares, statisticController)
			})
		})
	})
}
