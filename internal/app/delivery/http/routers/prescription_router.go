package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/prescriptions"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, prescriptionController *prescriptions.PrescriptionController) {
	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleDoctor)).
		Post("/", prescriptionController.CreatePrescription)

	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleDoctor)).
		Post("/{prescription_id}/document", prescriptionController.RenderPrescriptionDocument)

	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleDoctor)).
		Patch("/{prescription_id}/payment", prescriptionController.UpdatePaymentStatus)

	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleDoctor)).
		Get("/doctor", prescriptionController.ListDoctorPrescriptions)

	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RolePatient)).
		Get("/patient", prescriptionController.ListPatientPrescriptions)
}
