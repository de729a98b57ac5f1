package contracts

import (
	"context"

	"medibook-service/internal/app/models"
)

type RenderPrescriptionInput struct {
	Prescription *models.Prescription
	Profile      *models.DoctorProfile
	DoctorName   string
	PatientName  string
}

// DocumentRenderer turns a prescription plus issuer metadata into a persisted
// document and returns its location.
type DocumentRenderer interface {
	RenderPrescription(ctx context.Context, input *RenderPrescriptionInput) (documentLocation string, err error)
}
