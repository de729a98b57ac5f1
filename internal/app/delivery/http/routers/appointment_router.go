package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/appointments"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RolePatient)).
		Post("/", appointmentController.CreateAppointment)

	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RolePatient)).
		Get("/patient", appointmentController.ListPatientAppointments)

	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleDoctor)).
		Get("/doctor", appointmentController.ListDoctorAppointments)

	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleDoctor)).
		Patch("/{appointment_id}/status", appointmentController.UpdateAppointmentStatus)
}
